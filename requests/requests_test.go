package requests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestCreateRequestRejectsBadJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/requestedMeals", strings.NewReader("nope"))

	CreateRequest(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRequestRequiresEmail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/requestedMeals", strings.NewReader(`{"user_name":"alice"}`))

	CreateRequest(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliverRequestRejectsMalformedID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/requestedMeals/zzz", nil)

	DeliverRequest(w, r, httprouter.Params{{Key: "id", Value: "zzz"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
