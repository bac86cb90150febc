package db

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection          *mongo.Collection
	MealCollection          *mongo.Collection
	UpcomingMealCollection  *mongo.Collection
	RequestedMealCollection *mongo.Collection
	Client                  *mongo.Client
)

// Init opens the MongoDB connection and binds the collection handles.
// Call once at startup; Close releases the connection at shutdown.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	Client = client

	UserCollection = Client.Database("dinesmart").Collection("users")
	MealCollection = Client.Database("dinesmart").Collection("meals")
	UpcomingMealCollection = Client.Database("dinesmart").Collection("upcomingMeals")
	RequestedMealCollection = Client.Database("dinesmart").Collection("requestedMeals")

	return nil
}

func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
