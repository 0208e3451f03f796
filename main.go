package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"learnhub/config"
	"learnhub/controllers"
	"learnhub/database"
	"learnhub/gateway"
	"learnhub/logger"
	"learnhub/routers"
	"learnhub/utils"
)

// buildAdapter picks the backend per configuration. Any misconfiguration
// degrades to nil (mock only); the process must come up regardless.
func buildAdapter() gateway.BackendAdapter {
	switch config.AppConfig.Backend {
	case "script":
		if config.AppConfig.ScriptApiUrl == "" {
			return nil
		}
		return gateway.NewScriptAdapter(config.AppConfig.ScriptApiUrl)
	case "db":
		db, err := database.Connect()
		if err != nil {
			logger.Errorf("database unavailable (%v), serving mock data", err)
			return nil
		}
		return gateway.NewDBAdapter(db)
	}
	return nil
}

func main() {
	config.LoadConfig()
	logger.Init(config.AppConfig.Env != "production")

	mock := gateway.NewMockProvider(config.AppConfig.StatsSeed)
	gw := gateway.New(buildAdapter(), mock, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword)
	controllers.SetGateway(gw)

	scheduler := utils.StartHealthScheduler(gw)
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	routers.SetupRoutes(app)

	logger.Infof("Server is running on port %s (backend: %s)", config.AppConfig.Port, gw.Backend())
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
