package meals

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"dinesmart/db"
	"dinesmart/models"
	"dinesmart/mq"
	"dinesmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upcoming meals share the meal shape but live in their own collection
// until an admin releases them.

func GetUpcomingMeals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	meals, err := utils.FindAndDecode[models.Meal](ctx, db.UpcomingMealCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch upcoming meals")
		return
	}
	if len(meals) == 0 {
		meals = []models.Meal{}
	}

	utils.RespondWithJSON(w, http.StatusOK, meals)
}

func CreateUpcomingMeal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	res, err := db.UpcomingMealCollection.InsertOne(ctx, meal)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to insert upcoming meal")
		return
	}

	go mq.Emit(context.Background(), "upcoming-meal-created", mq.Index{
		EntityType: "upcomingMeal", Method: "POST", EntityId: insertedHex(res),
	})

	utils.RespondWithJSON(w, http.StatusCreated, res)
}

func UpdateUpcomingMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	res, err := db.UpcomingMealCollection.UpdateOne(ctx, bson.M{"_id": objID}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update upcoming meal")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

func DeleteUpcomingMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	res, err := db.UpcomingMealCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete upcoming meal")
		return
	}

	go mq.Emit(context.Background(), "upcoming-meal-deleted", mq.Index{
		EntityType: "upcomingMeal", Method: "DELETE", EntityId: objID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusOK, res)
}
