package routes

import (
	"dinesmart/auth"
	"dinesmart/meals"
	"dinesmart/middleware"
	"dinesmart/pay"
	"dinesmart/requests"
	"dinesmart/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/jwt", auth.IssueToken)
	router.GET("/logout", auth.Logout)
}

func AddMealRoutes(router *httprouter.Router) {
	router.GET("/meals", meals.GetMeals)
	router.GET("/meal/:id", meals.GetMeal)
	router.POST("/meals", middleware.Authenticate(middleware.VerifyAdmin(meals.CreateMeal)))

	router.GET("/dashboard/all-meals/meal/:id", middleware.Authenticate(middleware.VerifyAdmin(meals.GetMeal)))
	router.GET("/dashboard/all-meals/update/:id", middleware.Authenticate(middleware.VerifyAdmin(meals.GetMeal)))
	router.PUT("/dashboard/all-meals/meal/:id", middleware.Authenticate(middleware.VerifyAdmin(meals.UpdateMeal)))
	router.DELETE("/dashboard/all-meals/meal/:id", middleware.Authenticate(middleware.VerifyAdmin(meals.DeleteMeal)))

	router.PUT("/addComment/:id", middleware.Authenticate(meals.AddComment))
	router.GET("/comments/:name", middleware.Authenticate(meals.GetCommentsByUser))
	router.PUT("/comments/:name/:comment", middleware.Authenticate(meals.UpdateComment))
	router.DELETE("/comments/:name/:comment", middleware.Authenticate(meals.DeleteComment))

	router.PUT("/like/:id", middleware.Authenticate(meals.Like))
	router.PUT("/dislike/:id", middleware.Authenticate(meals.Dislike))
	router.PUT("/increase/:id", middleware.Authenticate(meals.IncreaseUpcomingLike))
	router.PUT("/decrease/:id", middleware.Authenticate(meals.DecreaseUpcomingLike))

	router.GET("/upcomingMeals", meals.GetUpcomingMeals)
	router.POST("/upcomingMeals", middleware.Authenticate(middleware.VerifyAdmin(meals.CreateUpcomingMeal)))
	router.PUT("/upcomingMeals/:id", middleware.Authenticate(middleware.VerifyAdmin(meals.UpdateUpcomingMeal)))
	router.DELETE("/upcomingMeals/:id", middleware.Authenticate(middleware.VerifyAdmin(meals.DeleteUpcomingMeal)))
}

func AddUserRoutes(router *httprouter.Router) {
	router.PUT("/users/:email", users.UpsertUser)
	router.GET("/users", middleware.Authenticate(middleware.VerifyAdmin(users.GetUsers)))
	router.GET("/users/:role", middleware.Authenticate(middleware.VerifyAdmin(users.GetUsersByRole)))
	router.GET("/user/:email", middleware.Authenticate(users.GetUserByEmail))
	router.PUT("/user/:email", middleware.Authenticate(users.UpdateUserStatus))
	router.GET("/user1/:id", middleware.Authenticate(users.GetUserByID))
	router.PUT("/user1/:id", middleware.Authenticate(middleware.VerifyAdmin(users.PromoteUser)))
	router.PUT("/addLike/:email", middleware.Authenticate(users.AddLikedMeal))
}

func AddRequestRoutes(router *httprouter.Router) {
	router.POST("/requestedMeals", middleware.Authenticate(requests.CreateRequest))
	router.GET("/requestedMeals", middleware.Authenticate(middleware.VerifyAdmin(requests.GetRequests)))
	router.GET("/requestedMeals/:email", middleware.Authenticate(requests.GetRequestsByEmail))
	router.PUT("/requestedMeals/:id", middleware.Authenticate(middleware.VerifyAdmin(requests.DeliverRequest)))
	router.DELETE("/requestedMeals/:id", middleware.Authenticate(requests.DeleteRequest))
}

func AddPayRoutes(router *httprouter.Router) {
	router.POST("/create-payment-intent", middleware.Authenticate(pay.CreatePaymentIntent))
}
