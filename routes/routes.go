package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/granaflow/granaflow/controllers"
	"github.com/granaflow/granaflow/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	api := app.Group("/api/v2/me", middlewares.Authenticate)

	api.Get("/snapshot", controllers.GetSnapshot)
	api.Post("/snapshot/refresh", controllers.RefreshSnapshot)
	api.Delete("/session", controllers.Logout)

	api.Get("/transactions", controllers.GetTransactions)
	api.Post("/transactions", controllers.CreateTransaction)
	api.Put("/transactions/:id", controllers.UpdateTransaction)
	api.Delete("/transactions/:id", controllers.DeleteTransaction)
	api.Get("/financials", controllers.GetFinancials)

	api.Get("/scheduled_transactions", controllers.GetScheduledTransactions)
	api.Post("/scheduled_transactions", controllers.CreateScheduledTransaction)
	api.Put("/scheduled_transactions/:id", controllers.UpdateScheduledTransaction)
	api.Delete("/scheduled_transactions/:id", controllers.DeleteScheduledTransaction)
	api.Post("/scheduled_transactions/:id/notify", controllers.NotifyReminder)

	api.Get("/goals", controllers.GetGoals)
	api.Get("/categories", controllers.GetCategories)

	api.Post("/view/time_range", controllers.SetTimeRange)
	api.Post("/view/custom_range", controllers.SetCustomRange)
	api.Post("/view/hide_values", controllers.ToggleHideValues)

	return app
}
