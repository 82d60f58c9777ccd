// Package auth implements registration and credential checks on top of a
// store.IStore. It knows nothing about HTTP or sessions.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/rs/xid"

	"github.com/ibrahimfakhry/portfolio/model"
	"github.com/ibrahimfakhry/portfolio/store"
	"github.com/ibrahimfakhry/portfolio/util"
)

var (
	// ErrInvalidCredentials is returned for every failed login. Unknown users
	// and wrong passwords are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = fmt.Errorf("username taken: %w", store.ErrUserExists)
)

// Notifier is told about every new account after it has been stored
type Notifier interface {
	UserRegistered(user model.User) error
}

type Service struct {
	db        store.IStore
	hashCost  int
	notifiers []Notifier
}

type Option func(*Service)

// WithHashCost sets the bcrypt cost used for new passwords
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

// WithNotifier adds a notifier; nil notifiers are ignored
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifiers = append(s.notifiers, n)
		}
	}
}

func NewService(db store.IStore, opts ...Option) *Service {
	s := &Service{db: db, hashCost: util.DefaultBcryptCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register stores a new account. The form is expected to be validated already.
func (s *Service) Register(form model.RegisterForm) (model.User, error) {
	// duplicates skip the bcrypt round
	if s.db.ContainsUser(form.Username) {
		return model.User{}, ErrUsernameTaken
	}

	hash, err := util.HashPassword(form.Password, s.hashCost)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:           xid.New().String(),
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return model.User{}, ErrUsernameTaken
		}
		return model.User{}, fmt.Errorf("cannot store user: %w", err)
	}

	for _, n := range s.notifiers {
		go func(n Notifier) {
			if err := n.UserRegistered(user); err != nil {
				log.Warnf("Cannot send registration notification for %s: %v", user.Username, err)
			}
		}(n)
	}

	return user, nil
}

// Authenticate returns the user when username and password match a stored
// account, ErrInvalidCredentials otherwise.
func (s *Service) Authenticate(username, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, ErrInvalidCredentials
	}

	user, err := s.db.GetUserByName(username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("Cannot load user: ", err)
		}
		return model.User{}, ErrInvalidCredentials
	}

	match, err := util.VerifyHash(user.PasswordHash, password)
	if err != nil {
		log.Errorf("Cannot verify password hash of %s: %v", username, err)
		return model.User{}, ErrInvalidCredentials
	}
	if !match {
		return model.User{}, ErrInvalidCredentials
	}
	return user, nil
}
