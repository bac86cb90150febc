package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinesmart/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issue(t *testing.T, body string) *http.Response {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
	IssueToken(w, r, nil)
	return w.Result()
}

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no token cookie set")
	return nil
}

func TestIssueTokenSetsSessionCookie(t *testing.T) {
	resp := issue(t, `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookieFrom(t, resp)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure, "secure is production-only")
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(365*24*time.Hour/time.Second), cookie.MaxAge)
}

func TestIssuedTokenCarriesEmailAndExpiry(t *testing.T) {
	resp := issue(t, `{"email":"alice@example.com"}`)
	cookie := sessionCookieFrom(t, resp)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "alice@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	wantExp := time.Now().Add(365 * 24 * time.Hour)
	assert.WithinDuration(t, wantExp, exp.Time, time.Minute)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	resp := issue(t, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsCookieWithMatchingFlags(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	Logout(w, r, nil)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookieFrom(t, resp)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "clear must expire the cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}
