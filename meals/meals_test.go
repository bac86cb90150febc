package meals

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMealFilterEmpty(t *testing.T) {
	filter := buildMealFilter(url.Values{})
	assert.Empty(t, filter, "no params must mean match-all")
}

func TestBuildMealFilterPriceRange(t *testing.T) {
	filter := buildMealFilter(url.Values{"price": {"5,20"}})

	rangeFilter, ok := filter["price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 5, rangeFilter["$gt"], "lower bound must be strict")
	assert.Equal(t, 20, rangeFilter["$lt"], "upper bound must be strict")
}

func TestBuildMealFilterPartialPriceRange(t *testing.T) {
	filter := buildMealFilter(url.Values{"price": {"5,"}})

	rangeFilter, ok := filter["price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 5, rangeFilter["$gt"])
	assert.NotContains(t, rangeFilter, "$lt", "missing upper bound leaves that side open")
}

func TestBuildMealFilterMalformedPrice(t *testing.T) {
	filter := buildMealFilter(url.Values{"price": {"cheap,expensive"}})
	assert.NotContains(t, filter, "price", "unparseable bounds add no constraint")
}

func TestBuildMealFilterSearchIsCaseInsensitive(t *testing.T) {
	filter := buildMealFilter(url.Values{"search": {"Biryani"}})

	re, ok := filter["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "Biryani", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildMealFilterCategorySubstring(t *testing.T) {
	filter := buildMealFilter(url.Values{"category": {"dinner"}})

	re, ok := filter["type"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "dinner", re.Pattern)
	assert.Empty(t, re.Options)
}

func TestBuildMealFilterQuotesRegexMeta(t *testing.T) {
	filter := buildMealFilter(url.Values{"search": {"mac+cheese"}})

	re, ok := filter["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `mac\+cheese`, re.Pattern)
}

func TestGetMealRejectsMalformedID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/meal/not-an-id", nil)

	GetMeal(w, r, httprouter.Params{{Key: "id", Value: "not-an-id"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeRejectsMalformedID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/like/xyz", nil)

	Like(w, r, httprouter.Params{{Key: "id", Value: "xyz"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
