package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"dinesmart/globals"
	"dinesmart/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Sessions are valid for a year, matching the cookie lifetime.
const tokenValidity = 365 * 24 * time.Hour

// IssueToken handles POST /jwt: signs a session token for the posted
// identity and sets it as the "token" cookie.
func IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	now := time.Now()
	claims := sessionClaims(body.Email, now)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	http.SetCookie(w, sessionCookie(token, int(tokenValidity/time.Second)))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Logout handles GET /logout: clears the session cookie. The flags must
// match issuance exactly or browsers refuse the clear.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, sessionCookie("", -1))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func sessionClaims(email string, now time.Time) jwt.Claims {
	return jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenValidity).Unix(),
	}
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if globals.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   globals.IsProduction(),
		SameSite: sameSite,
	}
}
