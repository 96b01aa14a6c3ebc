package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2k5/resume-analyzer/pkg/nlp"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

var defaults = taxonomy.MustDefault()

func run(s Strategy, text string) *TermSet {
	found := NewTermSet()
	s.Find(NewInput(nlp.NormalizeText(text)), found)
	return found
}

func TestDirectStrategyWordBoundaries(t *testing.T) {
	direct := newDirectStrategy(defaults.Skills)

	cases := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{
			name:    "javascript alone is not java",
			text:    "javascript",
			want:    []string{"JavaScript"},
			notWant: []string{"Java"},
		},
		{
			name: "java developer",
			text: "java developer",
			want: []string{"Java"},
		},
		{
			name: "symbol suffixed terms",
			text: "Wrote services in C++ and C# for years",
			want: []string{"C++", "C#"},
		},
		{
			name: "multi word term by containment",
			text: "Strong problem solving and time management",
			want: []string{"Problem Solving", "Time Management"},
		},
		{
			name:    "go inside another word",
			text:    "good governance",
			notWant: []string{"Go"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found := run(direct, tc.text)
			for _, w := range tc.want {
				assert.True(t, found.Has(w), "expected %q in %v", w, found.Slice())
			}
			for _, w := range tc.notWant {
				assert.False(t, found.Has(w), "unexpected %q in %v", w, found.Slice())
			}
		})
	}
}

func TestSectionStrategy(t *testing.T) {
	section := newSectionStrategy(defaults.Skills, defaults.Skills.SectionHeaders, defaults.Skills.Separators)

	t.Run("comma list ends at blank line", func(t *testing.T) {
		found := run(section, "Skills: Python, AWS, Docker\n\nExperience: built Kubernetes clusters")
		assert.Equal(t, []string{"Python", "AWS", "Docker"}, found.Slice())
	})

	t.Run("bulleted lines end at capitalized line", func(t *testing.T) {
		found := run(section, "Technical Skills:\n- Go\n- Kubernetes\nEducation\n- Rust")
		assert.Equal(t, []string{"Go", "Kubernetes"}, found.Slice())
	})

	t.Run("header must end at a delimiter", func(t *testing.T) {
		found := run(section, "Skillset: Python, Java")
		assert.Zero(t, found.Len())
	})

	t.Run("header only at line start", func(t *testing.T) {
		found := run(section, "my skills: python, java")
		assert.Zero(t, found.Len())
	})

	t.Run("items must match exactly", func(t *testing.T) {
		found := run(section, "skills: python scripting | react")
		assert.Equal(t, []string{"React"}, found.Slice())
	})
}

func TestPatternStrategy(t *testing.T) {
	pattern := newPatternStrategy(defaults.Skills, defaults.Skills.Patterns, taxonomy.PhraseGroup)

	t.Run("years of experience", func(t *testing.T) {
		found := run(pattern, "5 years of experience with Kubernetes")
		assert.True(t, found.Has("Kubernetes"))
	})

	t.Run("two way containment is loose", func(t *testing.T) {
		found := run(pattern, "Proficient in Go")
		for _, w := range []string{"Go", "Django", "MongoDB"} {
			assert.True(t, found.Has(w), "expected %q in %v", w, found.Slice())
		}
	})

	t.Run("seniority title", func(t *testing.T) {
		found := run(pattern, "Senior Flask developer")
		assert.True(t, found.Has("Flask"))
	})

	t.Run("punctuation only capture is skipped", func(t *testing.T) {
		found := run(pattern, "proficient in ...")
		assert.Zero(t, found.Len())
	})
}

func TestAbbreviationStrategy(t *testing.T) {
	abbrev := newAbbreviationStrategy(defaults.Certifications.Abbreviations)

	for _, text := range []string{"PMP", "pmp", "Holds a Pmp since 2019"} {
		found := run(abbrev, text)
		assert.Equal(t, []string{"Project Management Professional"}, found.Slice(), text)
	}

	assert.Zero(t, run(abbrev, "pmps and xpmp").Len())
}

func TestTermSetDeduplicatesIgnoringCase(t *testing.T) {
	s := NewTermSet()
	s.Add("Python")
	s.Add("python")
	s.Add("Go")
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Python", "Go"}, s.Slice())
	assert.True(t, s.Has("GO"))
}
