package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/py2k5/resume-analyzer/pkg/certification"
	"github.com/py2k5/resume-analyzer/pkg/extract"
	"github.com/py2k5/resume-analyzer/pkg/ocr"
	"github.com/py2k5/resume-analyzer/pkg/skill"
)

// Analysis — отчёт по одному резюме: найденные навыки, сертификаты и
// сведения об исходном документе.
type Analysis struct {
	ID            uuid.UUID `json:"id"`
	Filename      string    `json:"filename,omitempty"`
	Checksum      string    `json:"checksum,omitempty"`
	ContentLength int       `json:"content_length"`
	DocumentInfo  *ocr.Info `json:"document_info,omitempty"`

	Skills                extract.Categorized    `json:"skills"`
	SkillsSummary         skill.Summary          `json:"skills_summary"`
	Certifications        extract.Categorized    `json:"certifications"`
	CertificationDetails  []certification.Detail `json:"certification_details"`
	CertificationsSummary certification.Summary  `json:"certifications_summary"`

	ExtractionMethod string    `json:"extraction_method"`
	CreatedAt        time.Time `json:"created_at"`
}

// TextExtractor — порт извлечения текста из загруженного файла.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (ocr.Document, error)
}

// AnalysisService describes the application use case for resume analysis.
type AnalysisService interface {
	Analyze(ctx context.Context, filename string, data []byte) (Analysis, error)
	AnalyzeText(ctx context.Context, text string) (Analysis, error)
}
