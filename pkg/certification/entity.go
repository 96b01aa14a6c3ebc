package certification

import "github.com/py2k5/resume-analyzer/pkg/extract"

// Detail — контекст, найденный рядом с сертификатом в тексте.
// Date and IssuingOrganization are left empty, and omitted from JSON, when
// nothing was found near the certification.
type Detail struct {
	Certification       string `json:"certification"`
	Date                string `json:"date,omitempty"`
	IssuingOrganization string `json:"issuing_organization,omitempty"`
}

// Summary — сводка по найденным сертификатам.
type Summary struct {
	TotalCertificationsFound     int            `json:"total_certifications_found"`
	Categories                   []string       `json:"categories"`
	CertificationCountByCategory extract.Counts `json:"certification_count_by_category"`
	TopCertifications            []string       `json:"top_certifications"`
}

// Result is the certification part of an analysis report.
type Result struct {
	Certifications extract.Categorized `json:"certifications"`
	Details        []Detail            `json:"details"`
	Summary        Summary             `json:"summary"`
}

// UseCase extracts certifications and their details from plain resume text
// normalized with nlp.NormalizeText.
type UseCase interface {
	Extract(text string) Result
}
