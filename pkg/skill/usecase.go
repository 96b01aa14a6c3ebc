package skill

import (
	"fmt"

	"github.com/py2k5/resume-analyzer/pkg/extract"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

type service struct {
	extractor *extract.Extractor
}

// NewService compiles the skills taxonomy once; the service is safe for
// concurrent use.
func NewService(tax *taxonomy.Taxonomy) (UseCase, error) {
	if tax == nil {
		return nil, fmt.Errorf("skills taxonomy is required")
	}
	return &service{extractor: extract.New(tax)}, nil
}

func (s *service) Extract(text string) Result {
	res := s.extractor.Extract(text)
	sum := s.extractor.Summarize(res.Categorized)
	return Result{
		Skills: res.Categorized,
		Summary: Summary{
			TotalSkillsFound:     sum.Total,
			Categories:           sum.Categories,
			SkillCountByCategory: sum.Counts,
			TopSkills:            sum.Top,
		},
	}
}
