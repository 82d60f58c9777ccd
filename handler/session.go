package handler

import (
	"encoding/gob"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/ibrahimfakhry/portfolio/model"
	"github.com/ibrahimfakhry/portfolio/util"
)

func init() {
	gob.Register(model.Flash{})
}

// Session is the per-request view of the visitor's session. Handlers only
// touch identity and flashes through it.
type Session interface {
	// CurrentUser returns the logged in username, if any
	CurrentUser() (string, bool)
	SetUser(username string)
	// ClearUser is a no-op for anonymous sessions
	ClearUser()
	AddFlash(category, message string)
	// Flashes returns and removes pending flashes
	Flashes() []model.Flash
	// Save writes the session cookie; call before the response body
	Save() error
}

type cookieSession struct {
	c    echo.Context
	sess *sessions.Session
}

// getSession loads the visitor's session. A cookie that no longer decodes,
// e.g. one signed before a restart, yields a fresh anonymous session.
func getSession(c echo.Context) (Session, error) {
	sess, err := session.Get(util.SessionName, c)
	if sess == nil {
		return nil, err
	}
	if err != nil {
		log.Debugf("Discarding undecodable session cookie: %v", err)
	}
	return &cookieSession{c: c, sess: sess}, nil
}

func (s *cookieSession) CurrentUser() (string, bool) {
	username, ok := s.sess.Values[util.SessionUserKey].(string)
	return username, ok && username != ""
}

func (s *cookieSession) SetUser(username string) {
	s.sess.Values[util.SessionUserKey] = username
}

func (s *cookieSession) ClearUser() {
	delete(s.sess.Values, util.SessionUserKey)
}

func (s *cookieSession) AddFlash(category, message string) {
	s.sess.AddFlash(model.Flash{Category: category, Message: message})
}

func (s *cookieSession) Flashes() []model.Flash {
	raw := s.sess.Flashes()
	flashes := make([]model.Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(model.Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

func (s *cookieSession) Save() error {
	return s.sess.Save(s.c.Request(), s.c.Response())
}
