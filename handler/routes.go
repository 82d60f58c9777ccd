package handler

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gopkg.in/go-playground/validator.v9"

	"github.com/ibrahimfakhry/portfolio/auth"
	"github.com/ibrahimfakhry/portfolio/model"
)

// Flash texts shown to the visitor
const (
	msgUsernameExists   = "Username already exists!"
	msgRegistered       = "Registration successful! Please login."
	msgLoginSuccess     = "Login successful!"
	msgInvalidCreds     = "Invalid credentials!"
	msgLoggedOut        = "You have been logged out."
	msgInvalidUsername  = "Username must be 3-32 characters long and use only letters, digits, dots, dashes or underscores."
	msgInvalidEmail     = "Please enter a valid email address."
	msgInvalidPassword  = "Password must be at least 6 characters and at most 72 bytes long."
	msgMissingFormField = "Please fill in all fields."
)

// GalleryLister lists the images shown on the landing page
type GalleryLister interface {
	List() ([]model.GalleryImage, error)
}

// SiteInfo is rendered on the landing page
type SiteInfo struct {
	PublicURL string
	QRCode    template.URL
}

// Index handler
func Index(gallery GalleryLister, site SiteInfo) echo.HandlerFunc {
	return func(c echo.Context) error {
		images := []model.GalleryImage{}
		if gallery != nil {
			list, err := gallery.List()
			if err != nil {
				log.Warn("Cannot read gallery manifest: ", err)
			} else {
				images = list
			}
		}

		return renderPage(c, "index.html", "index", map[string]interface{}{
			"gallery":   images,
			"publicURL": site.PublicURL,
			"qrCode":    site.QRCode,
		})
	}
}

// RegisterPage handler
func RegisterPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderPage(c, "register.html", "register", nil)
	}
}

// Register handler creates a new account from the registration form
func Register(svc *auth.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := getSession(c)
		if err != nil {
			log.Error("Cannot load session: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Cannot load session")
		}

		form := new(model.RegisterForm)
		if err := c.Bind(form); err != nil {
			return err
		}
		if err := c.Validate(form); err != nil {
			return flashAndRedirect(c, sess, model.FlashError, validationMessage(err), "/register")
		}

		user, err := svc.Register(*form)
		if errors.Is(err, auth.ErrUsernameTaken) {
			return flashAndRedirect(c, sess, model.FlashError, msgUsernameExists, "/register")
		}
		if err != nil {
			log.Error("Cannot register user: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Cannot register user")
		}

		log.Infof("Registered user %s (%s)", user.Username, user.ID)
		return flashAndRedirect(c, sess, model.FlashSuccess, msgRegistered, "/login")
	}
}

// LoginPage handler
func LoginPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderPage(c, "login.html", "login", nil)
	}
}

// Login for signing in handler
func Login(svc *auth.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := getSession(c)
		if err != nil {
			log.Error("Cannot load session: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Cannot load session")
		}

		form := new(model.LoginForm)
		if err := c.Bind(form); err != nil {
			return err
		}

		user, err := svc.Authenticate(form.Username, form.Password)
		if err != nil {
			log.Infof("Failed login attempt for user %q", form.Username)
			return flashAndRedirect(c, sess, model.FlashError, msgInvalidCreds, "/login")
		}

		sess.SetUser(user.Username)
		log.Infof("Logged in user %s", user.Username)
		return flashAndRedirect(c, sess, model.FlashSuccess, msgLoginSuccess, "/")
	}
}

// Logout to log a user out
func Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := getSession(c)
		if err != nil {
			log.Error("Cannot load session: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Cannot load session")
		}

		if username, ok := sess.CurrentUser(); ok {
			log.Infof("Logged out user %s", username)
		}
		sess.ClearUser()
		return flashAndRedirect(c, sess, model.FlashSuccess, msgLoggedOut, "/")
	}
}

func flashAndRedirect(c echo.Context, sess Session, category, message, location string) error {
	sess.AddFlash(category, message)
	if err := sess.Save(); err != nil {
		log.Error("Cannot save session: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Cannot save session")
	}
	return c.Redirect(http.StatusFound, location)
}

// renderPage renders a page inside the base layout with the pending flashes
func renderPage(c echo.Context, name, active string, data map[string]interface{}) error {
	sess, err := getSession(c)
	if err != nil {
		log.Error("Cannot load session: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Cannot load session")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	username, _ := sess.CurrentUser()
	data["baseData"] = model.BaseData{Active: active, CurrentUser: username}
	data["flashes"] = sess.Flashes()
	data["year"] = time.Now().Year()

	// consumed flashes must be dropped from the cookie before the body is written
	if err := sess.Save(); err != nil {
		log.Error("Cannot save session: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Cannot save session")
	}

	if err := c.Render(http.StatusOK, name, data); err != nil {
		log.Errorf("%s render error: %v", name, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Cannot render page")
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgMissingFormField
	}
	switch verrs[0].Field() {
	case "Username":
		return msgInvalidUsername
	case "Email":
		return msgInvalidEmail
	case "Password":
		return msgInvalidPassword
	}
	return msgMissingFormField
}
