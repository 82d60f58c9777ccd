package auth

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ibrahimfakhry/portfolio/model"
	"github.com/ibrahimfakhry/portfolio/store"
	"github.com/ibrahimfakhry/portfolio/store/memdb"
)

type recordingNotifier struct {
	mu    sync.Mutex
	users []string
	done  chan struct{}
	err   error
}

func (r *recordingNotifier) UserRegistered(user model.User) error {
	r.mu.Lock()
	r.users = append(r.users, user.Username)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func newService(t *testing.T, opts ...Option) (*Service, *memdb.MemDB) {
	t.Helper()
	db := memdb.New()
	require.NoError(t, db.Init())
	opts = append([]Option{WithHashCost(bcrypt.MinCost)}, opts...)
	return NewService(db, opts...), db
}

func TestRegisterThenAuthenticate(t *testing.T) {
	s, _ := newService(t)

	user, err := s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.ID)

	got, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	s, db := newService(t)

	_, err := s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	stored, err := db.GetUserByName("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secret1")
}

func TestRegisterDuplicateKeepsHash(t *testing.T) {
	s, db := newService(t)

	_, err := s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	before, err := db.GetUserByName("alice")
	require.NoError(t, err)

	_, err = s.Register(model.RegisterForm{Username: "alice", Email: "b@x.com", Password: "other22"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, store.ErrUserExists)

	after, err := db.GetUserByName("alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = s.Authenticate("alice", "other22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	s, _ := newService(t)
	_, err := s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := s.Authenticate("alice", "wrong")
	_, unknownUser := s.Authenticate("mallory", "secret1")
	_, empty := s.Authenticate("", "")

	assert.Equal(t, ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, ErrInvalidCredentials, unknownUser)
	assert.Equal(t, ErrInvalidCredentials, empty)
}

func TestAuthenticateCorruptHash(t *testing.T) {
	s, db := newService(t)
	require.NoError(t, db.CreateUser(model.User{Username: "eve", PasswordHash: "not a hash"}))

	_, err := s.Authenticate("eve", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterNotifies(t *testing.T) {
	n := &recordingNotifier{done: make(chan struct{}, 2), err: errors.New("smtp down")}
	s, _ := newService(t, WithNotifier(n), WithNotifier(nil))

	_, err := s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err, "notifier errors must not fail registration")

	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Equal(t, []string{"alice"}, n.users)
}

func TestRegisterDuplicateDoesNotNotify(t *testing.T) {
	n := &recordingNotifier{done: make(chan struct{}, 2)}
	s, _ := newService(t, WithNotifier(n))

	_, err := s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	<-n.done

	_, err = s.Register(model.RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.Error(t, err)

	select {
	case <-n.done:
		t.Fatal("duplicate registration must not notify")
	case <-time.After(100 * time.Millisecond):
	}
}
