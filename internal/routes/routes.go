package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattia9203/RunApp-Server/internal/config"
	"github.com/mattia9203/RunApp-Server/internal/handlers"
	"github.com/mattia9203/RunApp-Server/internal/repository"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	runRepo := repository.NewRunRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	userHandler := handlers.NewUserHandler(userRepo)
	runHandler := handlers.NewRunHandler(runRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo)

	// The mobile client predates any versioned API surface, so the routes
	// live at the root exactly as it calls them.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("RunApp Database Server is Online!")
	})

	app.Post("/create_user", userHandler.CreateUser)
	app.Get("/get_user", userHandler.GetUser)

	app.Post("/create_run", runHandler.CreateRun)
	app.Get("/get_runs", runHandler.GetRuns)
	app.Delete("/delete_run", runHandler.DeleteRun)

	app.Post("/set_weekly_goal", goalHandler.SetWeeklyGoal)
	app.Get("/get_weekly_goal", goalHandler.GetWeeklyGoal)

	return registerDocsRoutes(app, cfg)
}
