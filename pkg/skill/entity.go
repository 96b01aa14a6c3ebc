package skill

import "github.com/py2k5/resume-analyzer/pkg/extract"

// Summary — сводка по найденным навыкам.
type Summary struct {
	TotalSkillsFound     int            `json:"total_skills_found"`
	Categories           []string       `json:"categories"`
	SkillCountByCategory extract.Counts `json:"skill_count_by_category"`
	TopSkills            []string       `json:"top_skills"`
}

// Result is the skills part of an analysis report.
type Result struct {
	Skills  extract.Categorized `json:"skills"`
	Summary Summary             `json:"skills_summary"`
}

// UseCase extracts skills from plain resume text normalized with
// nlp.NormalizeText.
type UseCase interface {
	Extract(text string) Result
}
