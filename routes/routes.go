package routes

import (
	"github.com/gofiber/fiber/v2"

	"snapgram/auth"
	"snapgram/controllers"
	"snapgram/middleware"
	"snapgram/services"
)

// Register wires the operation surface onto the app. Every /api route runs
// the identity middleware; authorization itself happens in the services.
func Register(app *fiber.App, content *services.Content, resolver *auth.Resolver) {
	api := app.Group("/api", middleware.Identify(resolver))

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", controllers.Signup(content))
	authGroup.Post("/login", controllers.Login(content))

	users := api.Group("/users")
	users.Get("/me", controllers.Me(content))
	users.Get("/", controllers.GetUsers(content))
	users.Get("/:id", controllers.GetUser(content))

	posts := api.Group("/posts")
	posts.Get("/", controllers.GetPosts(content))
	posts.Get("/:id", controllers.GetPostByID(content))
	posts.Post("/", controllers.CreatePost(content))
	posts.Patch("/:id", controllers.UpdatePost(content))
	posts.Delete("/:id", controllers.DeletePost(content))
	posts.Get("/:id/comments", controllers.GetComments(content))
	posts.Post("/:id/comments", controllers.CreateComment(content))
	posts.Post("/:id/like", controllers.LikePost(content))
	posts.Delete("/:id/like", controllers.UnlikePost(content))
	posts.Post("/:id/rating", controllers.RatePost(content))

	api.Delete("/comments/:id", controllers.DeleteComment(content))

	admin := api.Group("/admin")
	admin.Delete("/posts/:id", controllers.RemovePost(content))
	admin.Delete("/comments/:id", controllers.RemoveComment(content))
}
