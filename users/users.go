package users

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dinesmart/db"
	"dinesmart/models"
	"dinesmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertUser handles PUT /users/:email, the login-time upsert. If the
// user already exists the stored document is returned untouched;
// otherwise the posted fields are written with a server timestamp.
// Two concurrent first logins race on the find, but both upserts share
// the same filter so only one document can result.
func UpsertUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := ps.ByName("email")

	var body models.User
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.Role == "" {
		body.Role = "guest"
	}

	query := bson.M{"email": email}

	var existing models.User
	err := db.UserCollection.FindOne(ctx, query).Decode(&existing)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, existing)
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to look up user")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":      body.Name,
		"email":     email,
		"role":      body.Role,
		"status":    body.Status,
		"timestamp": time.Now().UnixMilli(),
	}}

	res, err := db.UserCollection.UpdateOne(ctx, query, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to save user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	if len(users) == 0 {
		users = []models.User{}
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetUserByEmail relays a miss as a null body, mirroring the by-id
// lookups.
func GetUserByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": ps.ByName("email")}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

func GetUsersByRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, bson.M{"role": ps.ByName("role")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	if len(users) == 0 {
		users = []models.User{}
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

func GetUserByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var user models.User
	err = db.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// PromoteUser handles PUT /user1/:id, setting role to "admin". Update
// only: promoting a missing user must not fabricate one.
func PromoteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	update := bson.M{"$set": bson.M{"role": "admin"}}
	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to promote user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

// UpdateUserStatus handles PUT /user/:email with a partial status write.
func UpdateUserStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	update := bson.M{"$set": bson.M{"status": body.Status}}
	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"email": ps.ByName("email")}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

// AddLikedMeal handles PUT /addLike/:email, appending a meal title to
// the user's liked list.
func AddLikedMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		MealTitle string `json:"mealTitle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MealTitle == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "mealTitle is required")
		return
	}

	update := bson.M{"$push": bson.M{"likedMeals": body.MealTitle}}
	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"email": ps.ByName("email")}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to record like")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}
