package emailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibrahimfakhry/portfolio/model"
)

type sentMail struct {
	toName, to, subject, content string
}

type fakeEmailer struct {
	sent []sentMail
	err  error
}

func (f *fakeEmailer) Send(toName string, to string, subject string, content string) error {
	f.sent = append(f.sent, sentMail{toName, to, subject, content})
	return f.err
}

func TestWelcomeMailer_Sends(t *testing.T) {
	f := &fakeEmailer{}
	w := NewWelcomeMailer(f, "Welcome", "<p>Hi %s</p>")

	err := w.UserRegistered(model.User{Username: "<alice>", Email: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, f.sent, 1)
	assert.Equal(t, sentMail{"<alice>", "a@x.com", "Welcome", "<p>Hi &lt;alice&gt;</p>"}, f.sent[0])
}

func TestWelcomeMailer_SkipsMissingEmail(t *testing.T) {
	f := &fakeEmailer{}
	w := NewWelcomeMailer(f, "Welcome", "%s")

	require.NoError(t, w.UserRegistered(model.User{Username: "alice"}))
	assert.Empty(t, f.sent)
}

func TestWelcomeMailer_WrapsError(t *testing.T) {
	cause := errors.New("connection refused")
	w := NewWelcomeMailer(&fakeEmailer{err: cause}, "Welcome", "%s")

	err := w.UserRegistered(model.User{Username: "alice", Email: "a@x.com"})
	assert.ErrorIs(t, err, cause)
}

func TestFromConfig(t *testing.T) {
	smtp := FromConfig("mail.local", 25, "", "", false, "NONE", "NONE", "sg-key", "Me", "me@x.com")
	assert.IsType(t, &SmtpMail{}, smtp)

	sg := FromConfig("", 0, "", "", false, "", "", "sg-key", "Me", "me@x.com")
	assert.IsType(t, &SendgridApiMail{}, sg)

	assert.Nil(t, FromConfig("", 0, "", "", false, "", "", "", "Me", "me@x.com"))
}

func TestSmtpOptionParsing(t *testing.T) {
	m := NewSmtpMail("h", 587, "u", "p", false, "login", "Me", "me@x.com", "tls")
	assert.Equal(t, authType("LOGIN"), m.authType)
	assert.Equal(t, encryptionType("TLS"), m.encryption)
	assert.Equal(t, "Me <me@x.com>", addressField("me@x.com", "Me"))
	assert.Equal(t, "me@x.com", addressField("me@x.com", ""))
}
