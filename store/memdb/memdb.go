// Package memdb provides the process-lifetime credential store. Its content
// is lost when the process exits.
package memdb

import (
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/ibrahimfakhry/portfolio/model"
	"github.com/ibrahimfakhry/portfolio/store"
)

type MemDB struct {
	mu    sync.RWMutex
	users map[string]model.User
}

var _ store.IStore = (*MemDB)(nil)

// New returns a new pointer MemDB
func New() *MemDB {
	return &MemDB{users: make(map[string]model.User)}
}

func (o *MemDB) Init() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.users == nil {
		o.users = make(map[string]model.User)
	}
	return nil
}

// GetUserByName func to get single user from the store
func (o *MemDB) GetUserByName(username string) (model.User, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	user, ok := o.users[username]
	if !ok {
		return model.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (o *MemDB) ContainsUser(username string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.users[username]
	return ok
}

// CreateUser func to save a new user in the store
func (o *MemDB) CreateUser(user model.User) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.users[user.Username]; ok {
		return store.ErrUserExists
	}
	if user.ID == "" {
		user.ID = xid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	o.users[user.Username] = user
	return nil
}

// Len returns the number of registered users
func (o *MemDB) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.users)
}
