package middleware

import (
	"context"
	"net/http"
	"time"

	"dinesmart/db"
	"dinesmart/globals"
	"dinesmart/models"
	"dinesmart/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// JWT claims
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticate rejects requests that do not carry a valid session cookie.
// On success the caller's email is stored in the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// VerifyAdmin composes after Authenticate: the stored role of the resolved
// identity must be "admin".
func VerifyAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email := EmailFromContext(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments || (err == nil && user.Role != "admin") {
			utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to verify role")
			return
		}

		next(w, r, ps)
	}
}

// EmailFromContext returns the authenticated email, or "" outside a gate.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(globals.EmailKey).(string)
	return email
}
