package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstub/devstub/pkg/store"
)

func newSimulator(t *testing.T) *Simulator {
	t.Helper()
	return NewSimulator(store.New(store.DefaultSeed()))
}

func TestLoginSuccess(t *testing.T) {
	a := newSimulator(t)

	session, err := a.Login("Sincere@april.biz", MockPassword)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(session.Token, TokenPrefix))
	assert.Equal(t, TokenExpiry, session.ExpiresIn)
	assert.Equal(t, "Leanne Graham", session.User["name"])
}

func TestLoginTokensAreUnique(t *testing.T) {
	a := newSimulator(t)

	first, err := a.Login("Sincere@april.biz", MockPassword)
	require.NoError(t, err)
	second, err := a.Login("Sincere@april.biz", MockPassword)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestLoginMissingCredentials(t *testing.T) {
	a := newSimulator(t)

	for _, tt := range []struct {
		name     string
		email    string
		password string
	}{
		{name: "no email", email: "", password: MockPassword},
		{name: "no password", email: "Sincere@april.biz", password: ""},
		{name: "neither", email: "", password: ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Login(tt.email, tt.password)
			var missing *MissingCredentialsError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, 400, missing.StatusCode())
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newSimulator(t)

	// Unknown email and wrong password are indistinguishable.
	_, unknownErr := a.Login("nobody@example.com", MockPassword)
	_, wrongErr := a.Login("Sincere@april.biz", "hunter2")

	var failed *AuthenticationFailedError
	require.ErrorAs(t, unknownErr, &failed)
	assert.Equal(t, 401, failed.StatusCode())
	require.ErrorAs(t, wrongErr, &failed)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	st := store.New(store.DefaultSeed())
	a := NewSimulator(st)

	session, err := a.Register(map[string]any{
		"name":     "Clementine Bauch",
		"username": "Samantha",
		"email":    "Nathan@yesenia.net",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(session.Token, TokenPrefix))
	assert.Equal(t, 3, session.User["id"])
	assert.Equal(t, 3, st.UserCount())

	// The registered user can log in with the mock password.
	_, err = a.Login("Nathan@yesenia.net", MockPassword)
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	a := newSimulator(t)

	_, err := a.Register(map[string]any{"name": "No Email", "username": "noemail"})
	var ve *store.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newSimulator(t)

	_, err := a.Register(map[string]any{
		"name":     "Impostor",
		"username": "impostor",
		"email":    "Sincere@april.biz",
	})
	var dup *store.DuplicateEmailError
	require.ErrorAs(t, err, &dup)
}
