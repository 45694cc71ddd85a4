package routes

import (
	"github.com/bkirwa/engagehub/handlers"
	"github.com/bkirwa/engagehub/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func PostRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	posts := api.Group("/posts", middleware.Protected())
	posts.Get("", handlers.GetFeed)
	posts.Post("", handlers.CreatePost)
	posts.Delete("/:postId", handlers.DeletePost)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/feed", websocket.New(handlers.ServeFeedWs))
}
