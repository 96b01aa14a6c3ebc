package certification

import (
	"fmt"

	"github.com/py2k5/resume-analyzer/pkg/extract"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

type service struct {
	extractor *extract.Extractor
	enricher  *Enricher
}

// NewService compiles the certifications taxonomy once; the service is safe
// for concurrent use.
func NewService(tax *taxonomy.Taxonomy) (UseCase, error) {
	if tax == nil {
		return nil, fmt.Errorf("certifications taxonomy is required")
	}
	return &service{
		extractor: extract.New(tax),
		enricher:  NewEnricher(tax),
	}, nil
}

func (s *service) Extract(text string) Result {
	res := s.extractor.Extract(text)
	sum := s.extractor.Summarize(res.Categorized)
	return Result{
		Certifications: res.Categorized,
		Details:        s.enricher.Enrich(text, res.Found),
		Summary: Summary{
			TotalCertificationsFound:     sum.Total,
			Categories:                   sum.Categories,
			CertificationCountByCategory: sum.Counts,
			TopCertifications:            sum.Top,
		},
	}
}
