package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/py2k5/resume-analyzer/api/http/handlers"
)

// NewApp builds the Fiber app with the common middleware stack. bodyLimit
// must leave room for multipart framing around the largest accepted upload.
func NewApp(bodyLimit int) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "resume-analyzer",
		BodyLimit:    bodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	return app
}
