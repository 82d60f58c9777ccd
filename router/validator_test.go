package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ibrahimfakhry/portfolio/model"
)

func TestValidatorRegisterForm(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"six characters", "secret", true},
		{"72 ascii bytes", strings.Repeat("a", 72), true},
		{"73 ascii bytes", strings.Repeat("a", 73), false},
		{"36 two-byte runes", strings.Repeat("é", 36), true},
		{"40 two-byte runes", strings.Repeat("é", 40), false},
		{"too short", "abc", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&model.RegisterForm{Username: "alice", Email: "a@x.com", Password: tc.password})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatorUsername(t *testing.T) {
	v := NewValidator()

	for _, name := range []string{"alice", "a.b_c-d", strings.Repeat("x", 32)} {
		assert.NoError(t, v.Validate(&model.RegisterForm{Username: name, Email: "a@x.com", Password: "secret"}), name)
	}
	for _, name := range []string{"al", "al ice", "<b>", strings.Repeat("x", 33)} {
		assert.Error(t, v.Validate(&model.RegisterForm{Username: name, Email: "a@x.com", Password: "secret"}), name)
	}
}
