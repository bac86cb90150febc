package meals

import (
	"context"
	"net/http"
	"time"

	"dinesmart/db"
	"dinesmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Like counters are plain integer deltas with no floor: enough dislikes
// push a meal negative.

func Like(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	applyLikeDelta(w, r, ps.ByName("id"), db.MealCollection, 1)
}

func Dislike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	applyLikeDelta(w, r, ps.ByName("id"), db.MealCollection, -1)
}

// IncreaseUpcomingLike and DecreaseUpcomingLike adjust the independent
// counter on a not-yet-released meal.
func IncreaseUpcomingLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	applyLikeDelta(w, r, ps.ByName("id"), db.UpcomingMealCollection, 1)
}

func DecreaseUpcomingLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	applyLikeDelta(w, r, ps.ByName("id"), db.UpcomingMealCollection, -1)
}

func applyLikeDelta(w http.ResponseWriter, r *http.Request, id string, coll *mongo.Collection, delta int) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"likes": delta}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update likes")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}
