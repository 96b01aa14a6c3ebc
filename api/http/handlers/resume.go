package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/py2k5/resume-analyzer/api/http/presenter"
	"github.com/py2k5/resume-analyzer/pkg/ocr"
	"github.com/py2k5/resume-analyzer/pkg/resume"
)

type ResumeHandler struct {
	svc resume.AnalysisService
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.AnalysisService, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &ResumeHandler{svc: svc, maxBytes: maxBytes}
}

// AnalyzeTextRequest is the body of POST /resume/analyze-text.
type AnalyzeTextRequest struct {
	Text string `json:"text"`
}

// Analyze извлекает текст из загруженного резюме и ищет в нём навыки и
// сертификаты.
// @Summary Analyze an uploaded resume
// @Description Accepts a PDF, DOCX, PNG, JPEG or TIFF resume, extracts its text and returns categorized skills and certifications.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (.pdf .docx .png .jpg .jpeg .tif .tiff)"
// @Success 200 {object} resume.Analysis
// @Failure 400 {object} presenter.ErrorResponse "Missing file or unsupported format"
// @Failure 413 {object} presenter.ErrorResponse "File too large"
// @Failure 422 {object} presenter.ErrorResponse "No text found"
// @Failure 429 {object} presenter.ErrorResponse "OCR busy"
// @Failure 502 {object} presenter.ErrorResponse "Document content not accessible"
// @Failure 503 {object} presenter.ErrorResponse "OCR unavailable"
// @Failure 500 {object} presenter.ErrorResponse "Internal error"
// @Router  /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, CodeMissingFile,
			"file is required ("+strings.Join(ocr.Extensions(), ", ")+")")
	}
	if _, err := ocr.FormatFromName(fh.Filename); err != nil {
		return writeError(c, err)
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, CodeSizeExceeded,
			fmt.Sprintf("file too large: limit is %d bytes", h.maxBytes))
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, CodeInvalidRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.svc.Analyze(c.UserContext(), fh.Filename, data)
	if err != nil {
		return writeError(c, err)
	}
	log.Printf("analyzed %s (%d bytes, %s): %d skills, %d certifications",
		fh.Filename, len(data), result.ExtractionMethod,
		result.SkillsSummary.TotalSkillsFound, result.CertificationsSummary.TotalCertificationsFound)
	return presenter.JSON(c, http.StatusOK, result)
}

// AnalyzeText runs the same analysis on text sent directly.
// @Summary Analyze resume text
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   body body AnalyzeTextRequest true "Resume text"
// @Success 200 {object} resume.Analysis
// @Failure 400 {object} presenter.ErrorResponse "Invalid body or empty text"
// @Failure 413 {object} presenter.ErrorResponse "Text too large"
// @Router  /resume/analyze-text [post]
func (h *ResumeHandler) AnalyzeText(c *fiber.Ctx) error {
	var req AnalyzeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, CodeInvalidRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return presenter.Error(c, http.StatusBadRequest, CodeInvalidRequest, "text is required")
	}
	if int64(len(req.Text)) > h.maxBytes {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, CodeSizeExceeded,
			fmt.Sprintf("text too large: limit is %d bytes", h.maxBytes))
	}
	result, err := h.svc.AnalyzeText(c.UserContext(), req.Text)
	if err != nil {
		return writeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, result)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", ocr.ErrSizeExceeded, max)
	}
	return b, nil
}
