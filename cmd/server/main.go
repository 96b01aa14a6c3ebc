// @title         resume-analyzer API
// @version       1.0
// @description   Extracts skills and professional certifications from uploaded resumes.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/py2k5/resume-analyzer/api/http"
	"github.com/py2k5/resume-analyzer/api/http/handlers"
	"github.com/py2k5/resume-analyzer/pkg/certification"
	"github.com/py2k5/resume-analyzer/pkg/config"
	"github.com/py2k5/resume-analyzer/pkg/health"
	"github.com/py2k5/resume-analyzer/pkg/health/checkers"
	"github.com/py2k5/resume-analyzer/pkg/ocr"
	"github.com/py2k5/resume-analyzer/pkg/ocr/tesseract"
	"github.com/py2k5/resume-analyzer/pkg/resume"
	"github.com/py2k5/resume-analyzer/pkg/skill"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"

	_ "github.com/py2k5/resume-analyzer/docs"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	// Taxonomies are validated once; a broken file stops the process.
	set, err := taxonomy.Load(cfg.TaxonomyDir)
	if err != nil {
		log.Fatalf("load taxonomies: %v", err)
	}
	skillUC, err := skill.NewService(set.Skills)
	if err != nil {
		log.Fatalf("init skills: %v", err)
	}
	certUC, err := certification.NewService(set.Certifications)
	if err != nil {
		log.Fatalf("init certifications: %v", err)
	}

	ocrClient := ocr.NewClient(tesseract.New(cfg.OCRLanguages...), ocr.Config{
		MaxBytes:      cfg.MaxUploadBytes,
		MaxConcurrent: cfg.OCRMaxConcurrent,
		Timeout:       cfg.OCRTimeout,
		QueueTimeout:  cfg.OCRQueueTimeout,
	})

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewOCRChecker(ocrClient))
	healthHandler := handlers.NewHealthHandler(readiness)

	resumeSvc := resume.NewAnalysisService(ocrClient, skillUC, certUC)
	resumeHandler := handlers.NewResumeHandler(resumeSvc, cfg.MaxUploadBytes)

	// Multipart framing needs headroom above the file limit.
	app := http.NewApp(int(cfg.MaxUploadBytes) + 1<<20)
	http.Register(app, healthHandler, resumeHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	log.Printf("taxonomies: %d skills, %d certifications; ocr engine %s, languages %v",
		len(set.Skills.Terms()), len(set.Certifications.Terms()), ocrClient.EngineName(), cfg.OCRLanguages)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
