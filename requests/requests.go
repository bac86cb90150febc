package requests

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dinesmart/db"
	"dinesmart/models"
	"dinesmart/mq"
	"dinesmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateRequest records a user's meal request. Status always starts
// pending regardless of what the client sends.
func CreateRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req models.RequestedMeal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}
	req.Status = models.RequestPending

	res, err := db.RequestedMealCollection.InsertOne(ctx, req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create request")
		return
	}

	go mq.Emit(context.Background(), "meal-requested", mq.Index{
		EntityType: "requestedMeal", Method: "POST", EntityId: req.Email,
	})

	utils.RespondWithJSON(w, http.StatusCreated, res)
}

func GetRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reqs, err := utils.FindAndDecode[models.RequestedMeal](ctx, db.RequestedMealCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch requests")
		return
	}
	if len(reqs) == 0 {
		reqs = []models.RequestedMeal{}
	}

	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

func GetRequestsByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"email": ps.ByName("email")}
	reqs, err := utils.FindAndDecode[models.RequestedMeal](ctx, db.RequestedMealCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch requests")
		return
	}
	if len(reqs) == 0 {
		reqs = []models.RequestedMeal{}
	}

	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

// DeliverRequest moves a request from pending to delivered. Update only:
// delivering an unknown id must not create a document.
func DeliverRequest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	update := bson.M{"$set": bson.M{"status": models.RequestDelivered}}
	res, err := db.RequestedMealCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update request")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}

func DeleteRequest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	res, err := db.RequestedMealCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete request")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}
