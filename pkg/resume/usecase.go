package resume

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/py2k5/resume-analyzer/pkg/certification"
	"github.com/py2k5/resume-analyzer/pkg/nlp"
	"github.com/py2k5/resume-analyzer/pkg/skill"
)

// MethodText marks analyses of text submitted directly.
const MethodText = "text"

type analysisService struct {
	extractor TextExtractor
	skills    skill.UseCase
	certs     certification.UseCase
	now       func() time.Time
}

// NewAnalysisService creates the default implementation. extractor may be nil
// when only AnalyzeText is used.
func NewAnalysisService(extractor TextExtractor, skills skill.UseCase, certs certification.UseCase) AnalysisService {
	return &analysisService{
		extractor: extractor,
		skills:    skills,
		certs:     certs,
		now:       time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, filename string, data []byte) (Analysis, error) {
	if s.extractor == nil {
		return Analysis{}, fmt.Errorf("text extractor is not configured")
	}
	doc, err := s.extractor.Extract(ctx, filename, data)
	if err != nil {
		return Analysis{}, fmt.Errorf("extract text from %s: %w", filename, err)
	}

	a := s.analyze(doc.Text, doc.Method)
	sum := blake2b.Sum256(data)
	a.Filename = filename
	a.Checksum = hex.EncodeToString(sum[:])
	info := doc.Info
	a.DocumentInfo = &info
	return a, nil
}

func (s *analysisService) AnalyzeText(ctx context.Context, text string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	return s.analyze(text, MethodText), nil
}

// analyze normalizes text once; both use cases work on the same copy.
func (s *analysisService) analyze(text, method string) Analysis {
	text = nlp.NormalizeText(text)
	skills := s.skills.Extract(text)
	certs := s.certs.Extract(text)
	return Analysis{
		ID:                    uuid.New(),
		ContentLength:         utf8.RuneCountInString(text),
		Skills:                skills.Skills,
		SkillsSummary:         skills.Summary,
		Certifications:        certs.Certifications,
		CertificationDetails:  certs.Details,
		CertificationsSummary: certs.Summary,
		ExtractionMethod:      method,
		CreatedAt:             s.now().UTC(),
	}
}
