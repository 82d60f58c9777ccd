package handler

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
)

// FormContentType checks that POST requests carry an html form body.
// Anything else is answered with 400 instead of reaching the handler.
func FormContentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodPost {
			return next(c)
		}

		mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
		if err != nil || (mediaType != echo.MIMEApplicationForm && mediaType != echo.MIMEMultipartForm) {
			return echo.NewHTTPError(http.StatusBadRequest, "Only form submissions allowed")
		}

		return next(c)
	}
}
