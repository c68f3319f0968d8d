package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgram/apperr"
	"snapgram/models"
)

func TestSignup(t *testing.T) {
	content, _, sink := newTestContent(t)

	payload, err := content.Signup(SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "alice", payload.User.Username)
	assert.Equal(t, models.RoleUser, payload.User.Role)
	assert.NotEqual(t, "password123", payload.User.Password)
	assert.NotEmpty(t, sink.infos)
}

func TestSignupRejectsEmptyFields(t *testing.T) {
	content, _, _ := newTestContent(t)

	cases := []SignupInput{
		{Username: "", Email: "a@example.com", Password: "pw"},
		{Username: "a", Email: "", Password: "pw"},
		{Username: "a", Email: "not-an-email", Password: "pw"},
		{Username: "a", Email: "a@example.com", Password: ""},
	}
	for _, in := range cases {
		_, err := content.Signup(in)
		assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
	}
}

func TestSignupDuplicates(t *testing.T) {
	content, _, _ := newTestContent(t)

	_, err := content.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = content.Signup(SignupInput{Username: "other", Email: "alice@example.com", Password: "pw"})
	assert.Equal(t, apperr.DuplicateEmail, apperr.KindOf(err))

	_, err = content.Signup(SignupInput{Username: "alice", Email: "other@example.com", Password: "pw"})
	assert.Equal(t, apperr.DuplicateUsername, apperr.KindOf(err))
}

func TestSignupThenLogin(t *testing.T) {
	content, _, _ := newTestContent(t)

	signedUp, err := content.Signup(SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	loggedIn, err := content.Login(LoginInput{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, loggedIn.User.ID)

	// The token embeds the created user's identity.
	ident, err := content.tokens.Verify(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, ident.ID)
	assert.Equal(t, models.RoleUser, ident.Role)
}

func TestLoginFailureDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	content, _, _ := newTestContent(t)

	_, err := content.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "right"})
	require.NoError(t, err)

	_, wrongPassword := content.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	_, unknownEmail := content.Login(LoginInput{Email: "nobody@example.com", Password: "right"})

	assert.Equal(t, apperr.InvalidCredentials, apperr.KindOf(wrongPassword))
	assert.Equal(t, apperr.InvalidCredentials, apperr.KindOf(unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
