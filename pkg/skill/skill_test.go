package skill

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

func newService(t *testing.T) UseCase {
	t.Helper()
	svc, err := NewService(taxonomy.MustDefault().Skills)
	require.NoError(t, err)
	return svc
}

func TestExtractSkills(t *testing.T) {
	res := newService(t).Extract("Skills: Python, AWS, Docker\n\nExperience: built data pipelines")

	assert.Equal(t, []string{"Python"}, res.Skills.Get("programming_languages"))
	assert.Equal(t, []string{"AWS"}, res.Skills.Get("cloud_platforms"))
	assert.Equal(t, []string{"Docker"}, res.Skills.Get("tools_technologies"))
	assert.Equal(t, 3, res.Summary.TotalSkillsFound)
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, res.Summary.TopSkills)
}

func TestExtractSkillsJSON(t *testing.T) {
	res := newService(t).Extract("Go and PostgreSQL")

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"skills": {"programming_languages": ["Go"], "databases": ["PostgreSQL"]},
		"skills_summary": {
			"total_skills_found": 2,
			"categories": ["programming_languages", "databases"],
			"skill_count_by_category": {"programming_languages": 1, "databases": 1},
			"top_skills": ["Go", "PostgreSQL"]
		}
	}`, string(data))
}

func TestExtractSkillsEmpty(t *testing.T) {
	res := newService(t).Extract("   ")

	assert.Empty(t, res.Skills)
	assert.Zero(t, res.Summary.TotalSkillsFound)
	assert.Empty(t, res.Summary.TopSkills)
}
