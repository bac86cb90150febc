package meals

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"dinesmart/db"
	"dinesmart/models"
	"dinesmart/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddComment appends a review to a meal. Each review gets a generated id
// so duplicate (user, comment) pairs stay distinguishable for clients;
// the edit and delete routes still match on (user, comment).
func AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(review.Comment) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "comment cannot be empty")
		return
	}
	review.ID = uuid.NewString()

	update := bson.M{"$push": bson.M{"reviews": review}}
	res, err := db.MealCollection.UpdateOne(ctx, bson.M{"_id": objID}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to add comment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

// GetCommentsByUser lists the meals carrying a review by the given user.
func GetCommentsByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"reviews.user": ps.ByName("name")}
	meals, err := utils.FindAndDecode[models.Meal](ctx, db.MealCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch comments")
		return
	}
	if len(meals) == 0 {
		meals = []models.Meal{}
	}

	utils.RespondWithJSON(w, http.StatusOK, meals)
}

// UpdateComment rewrites the text of the review matching (user, comment)
// exactly. With duplicate pairs the first structural match wins.
func UpdateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	filter := bson.M{"reviews": bson.M{"$elemMatch": bson.M{
		"user":    ps.ByName("name"),
		"comment": ps.ByName("comment"),
	}}}
	update := bson.M{"$set": bson.M{"reviews.$.comment": body.Comment}}

	res, err := db.MealCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update comment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

// DeleteComment pulls the review matching (user, comment) exactly.
func DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	match := bson.M{"user": ps.ByName("name"), "comment": ps.ByName("comment")}
	filter := bson.M{"reviews": bson.M{"$elemMatch": match}}
	update := bson.M{"$pull": bson.M{"reviews": match}}

	res, err := db.MealCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}
