package meals

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dinesmart/db"
	"dinesmart/models"
	"dinesmart/mq"
	"dinesmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildMealFilter maps the listing query params onto a Mongo filter.
// Absent or malformed fields add no constraint: an empty search means
// match-all, a bad price bound leaves that side of the range open.
func buildMealFilter(q url.Values) bson.M {
	filter := bson.M{}

	if search := q.Get("search"); search != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}
	if category := q.Get("category"); category != "" {
		filter["type"] = primitive.Regex{Pattern: regexp.QuoteMeta(category)}
	}

	// price arrives as a comma-joined "lo,hi" pair; bounds are strict
	if pair := q.Get("price"); pair != "" {
		rangeFilter := bson.M{}
		parts := strings.SplitN(pair, ",", 2)
		if lo, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			rangeFilter["$gt"] = lo
		}
		if len(parts) == 2 {
			if hi, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
				rangeFilter["$lt"] = hi
			}
		}
		if len(rangeFilter) > 0 {
			filter["price"] = rangeFilter
		}
	}

	return filter
}

// GetMeals handles GET /meals with optional search/category/price filters.
func GetMeals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	meals, err := utils.FindAndDecode[models.Meal](ctx, db.MealCollection, buildMealFilter(r.URL.Query()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch meals")
		return
	}
	if len(meals) == 0 {
		meals = []models.Meal{}
	}

	utils.RespondWithJSON(w, http.StatusOK, meals)
}

// GetMeal fetches a single meal by id. A miss relays as a null body, not
// an error, so a deleted meal reads back as empty.
func GetMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	var meal models.Meal
	err = db.MealCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&meal)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch meal")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, meal)
}

// CreateMeal inserts an admin-submitted meal.
func CreateMeal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(meal.Title) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}
	if meal.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "price must be non-negative")
		return
	}

	res, err := db.MealCollection.InsertOne(ctx, meal)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to insert meal")
		return
	}

	go mq.Emit(context.Background(), "meal-created", mq.Index{
		EntityType: "meal", Method: "POST", EntityId: insertedHex(res),
	})

	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// UpdateMeal handles PUT /dashboard/all-meals/meal/:id, a partial field
// replacement with upsert on.
func UpdateMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	update := bson.M{"$set": bson.M{
		"title":       meal.Title,
		"type":        meal.Type,
		"image":       meal.Image,
		"ingredients": meal.Ingredients,
		"description": meal.Description,
		"price":       meal.Price,
		"rating":      meal.Rating,
		"post_time":   meal.PostTime,
		"likes":       meal.Likes,
		"admin_name":  meal.AdminName,
		"admin_email": meal.AdminEmail,
	}}

	res, err := db.MealCollection.UpdateOne(ctx, bson.M{"_id": objID}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update meal")
		return
	}

	go mq.Emit(context.Background(), "meal-updated", mq.Index{
		EntityType: "meal", Method: "PUT", EntityId: objID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusOK, res)
}

// DeleteMeal removes a meal by id. Requested meals and reviews that
// reference it are left alone.
func DeleteMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	res, err := db.MealCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete meal")
		return
	}

	go mq.Emit(context.Background(), "meal-deleted", mq.Index{
		EntityType: "meal", Method: "DELETE", EntityId: objID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusOK, res)
}

func insertedHex(res *mongo.InsertOneResult) string {
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex()
	}
	return ""
}
