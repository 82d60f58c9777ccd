package router

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ibrahimfakhry/portfolio/util"
)

// pages rendered inside base.html
var pages = []string{"index.html", "login.html", "register.html"}

// TemplateRegistry is a custom html/template renderer for Echo framework
type TemplateRegistry struct {
	templates map[string]*template.Template
	extraData map[string]string
}

// Render e.Renderer interface
func (t *TemplateRegistry) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		err := errors.New("Template not found -> " + name)
		return err
	}

	// inject more app data information. E.g. appVersion
	if m, ok := data.(map[string]interface{}); ok {
		for k, v := range t.extraData {
			if _, set := m[k]; !set {
				m[k] = v
			}
		}
	}

	return tmpl.ExecuteTemplate(w, "base.html", data)
}

// NewTemplateRegistry parses every page together with the base layout
func NewTemplateRegistry(tmplDir fs.FS, extraData map[string]string) (*TemplateRegistry, error) {
	tmplBaseString, err := util.StringFromEmbedFile(tmplDir, "base.html")
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		pageString, err := util.StringFromEmbedFile(tmplDir, page)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(page).Parse(tmplBaseString + pageString)
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}

	return &TemplateRegistry{
		templates: templates,
		extraData: extraData,
	}, nil
}

// NewSessionStore returns the cookie store backing the session middleware.
// The session cookie lives until the browser closes.
func NewSessionStore(hashKey, blockKey []byte) *sessions.CookieStore {
	cookieStore := sessions.NewCookieStore(hashKey, blockKey)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	cookieStore.MaxAge(0)
	return cookieStore
}

// New function
func New(tmplDir fs.FS, extraData map[string]string, hashKey, blockKey []byte) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(NewSessionStore(hashKey, blockKey)))

	registry, err := NewTemplateRegistry(tmplDir, extraData)
	if err != nil {
		log.Fatal(err)
	}

	lvl, err := util.ParseLogLevel(util.LookupEnvOrString(util.LogLevel, "INFO"))
	if err != nil {
		log.Fatal(err)
	}
	logConfig := middleware.DefaultLoggerConfig
	logConfig.Skipper = func(c echo.Context) bool {
		resp := c.Response()
		if resp.Status >= 500 && lvl > log.ERROR { // do not log if response is 5XX but log level is higher than ERROR
			return true
		} else if resp.Status >= 400 && lvl > log.WARN { // do not log if response is 4XX but log level is higher than WARN
			return true
		} else if lvl > log.DEBUG { // do not log if log level is higher than DEBUG
			return true
		}
		return false
	}

	log.SetLevel(lvl)
	e.Logger.SetLevel(lvl)
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.LoggerWithConfig(logConfig))
	e.Use(middleware.Recover())
	e.HideBanner = true
	e.HidePort = lvl > log.INFO // hide the port output if the log level is higher than INFO
	e.Validator = NewValidator()
	e.Renderer = registry

	return e
}
