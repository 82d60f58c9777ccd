package store

import (
	"errors"

	"github.com/ibrahimfakhry/portfolio/model"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// IStore is the credential store. Implementations must make CreateUser an
// insert-if-absent operation.
type IStore interface {
	Init() error
	// GetUserByName returns ErrUserNotFound when the username is unknown.
	GetUserByName(username string) (model.User, error)
	// ContainsUser reports whether the username is already registered.
	ContainsUser(username string) bool
	// CreateUser stores the user unless the username is taken, in which case
	// it returns ErrUserExists and leaves the existing record untouched.
	CreateUser(user model.User) error
}
