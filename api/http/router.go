package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/py2k5/resume-analyzer/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, resume *handlers.ResumeHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Resume analysis
	rg := v1.Group("/resume")
	rg.Post("/analyze", resume.Analyze)
	rg.Post("/analyze-text", resume.AnalyzeText)
}
