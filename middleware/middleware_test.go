package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinesmart/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, email string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return token
}

func runGate(cookie *http.Cookie) (*httptest.ResponseRecorder, string, bool) {
	var gotEmail string
	called := false
	next := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		gotEmail = EmailFromContext(r.Context())
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/user/alice@example.com", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}

	Authenticate(next)(w, r, nil)
	return w, gotEmail, called
}

func TestAuthenticateRejectsMissingCookie(t *testing.T) {
	w, _, called := runGate(nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run without a credential")
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	w, _, called := runGate(&http.Cookie{Name: "token", Value: "not.a.jwt"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	token := signToken(t, "alice@example.com", -time.Hour)
	w, _, called := runGate(&http.Cookie{Name: "token", Value: token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsWrongKey(t *testing.T) {
	claims := jwt.MapClaims{"email": "mallory@example.com", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some other secret"))
	require.NoError(t, err)

	w, _, called := runGate(&http.Cookie{Name: "token", Value: token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthenticatePassesEmailToHandler(t *testing.T) {
	token := signToken(t, "alice@example.com", time.Hour)
	w, email, called := runGate(&http.Cookie{Name: "token", Value: token})

	require.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", email)
}

func TestEmailFromContextOutsideGate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, EmailFromContext(r.Context()))
}
