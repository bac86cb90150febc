package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name,omitempty" bson:"name,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Role       string             `json:"role,omitempty" bson:"role,omitempty"`
	Status     string             `json:"status,omitempty" bson:"status,omitempty"`
	LikedMeals []string           `json:"likedMeals,omitempty" bson:"likedMeals,omitempty"`
	Timestamp  int64              `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}

// Review lives inside a meal's reviews array. The ID is stamped at append
// time so clients can tell apart duplicate (user, comment) pairs.
type Review struct {
	ID      string `json:"id,omitempty" bson:"id,omitempty"`
	User    string `json:"user" bson:"user"`
	Comment string `json:"comment" bson:"comment"`
}

// Meal is used for both the meals and upcomingMeals collections.
type Meal struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Type        string             `json:"type,omitempty" bson:"type,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Ingredients string             `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	PostTime    string             `json:"post_time,omitempty" bson:"post_time,omitempty"`
	Likes       int                `json:"likes" bson:"likes"`
	AdminName   string             `json:"admin_name,omitempty" bson:"admin_name,omitempty"`
	AdminEmail  string             `json:"admin_email,omitempty" bson:"admin_email,omitempty"`
	Reviews     []Review           `json:"reviews,omitempty" bson:"reviews,omitempty"`
}

const (
	RequestPending   = "pending"
	RequestDelivered = "delivered"
)

type RequestedMeal struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserName  string             `json:"user_name" bson:"user_name"`
	Email     string             `json:"email" bson:"email"`
	MealID    string             `json:"meal_id,omitempty" bson:"meal_id,omitempty"`
	MealTitle string             `json:"meal_title,omitempty" bson:"meal_title,omitempty"`
	Status    string             `json:"status" bson:"status"`
}
