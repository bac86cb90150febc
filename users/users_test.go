package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestUpsertUserRejectsBadJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/users/alice@example.com", strings.NewReader("{"))

	UpsertUser(w, r, httprouter.Params{{Key: "email", Value: "alice@example.com"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromoteUserRejectsMalformedID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/user1/xyz", nil)

	PromoteUser(w, r, httprouter.Params{{Key: "id", Value: "xyz"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddLikedMealRequiresTitle(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/addLike/alice@example.com", strings.NewReader(`{}`))

	AddLikedMeal(w, r, httprouter.Params{{Key: "email", Value: "alice@example.com"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
