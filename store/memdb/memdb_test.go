package memdb

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibrahimfakhry/portfolio/model"
	"github.com/ibrahimfakhry/portfolio/store"
)

func TestMemDB_CreateAndGet(t *testing.T) {
	db := New()
	require.NoError(t, db.Init())

	err := db.CreateUser(model.User{Username: "alice", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	got, err := db.GetUserByName("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "h1", got.PasswordHash)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, db.ContainsUser("alice"))
}

func TestMemDB_GetMissing(t *testing.T) {
	db := New()

	_, err := db.GetUserByName("nobody")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.False(t, db.ContainsUser("nobody"))
}

func TestMemDB_DuplicateKeepsOriginal(t *testing.T) {
	db := New()
	require.NoError(t, db.CreateUser(model.User{Username: "alice", PasswordHash: "first"}))

	err := db.CreateUser(model.User{Username: "alice", PasswordHash: "second"})
	assert.ErrorIs(t, err, store.ErrUserExists)

	got, err := db.GetUserByName("alice")
	require.NoError(t, err)
	assert.Equal(t, "first", got.PasswordHash)
	assert.Equal(t, 1, db.Len())
}

func TestMemDB_ConcurrentCreateSameName(t *testing.T) {
	db := New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := db.CreateUser(model.User{Username: "bob", PasswordHash: fmt.Sprintf("h%d", i)})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, db.Len())
}
