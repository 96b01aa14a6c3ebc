package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	t.Run("vocabulary order inside a bucket", func(t *testing.T) {
		got := Categorize(defaults.Skills, []string{"Go", "Docker", "Python"})
		require.Len(t, got, 2)
		assert.Equal(t, Bucket{Category: "programming_languages", Terms: []string{"Python", "Go"}}, got[0])
		assert.Equal(t, Bucket{Category: "tools_technologies", Terms: []string{"Docker"}}, got[1])
	})

	t.Run("first category wins", func(t *testing.T) {
		got := Categorize(defaults.Certifications, []string{"Google Cloud Certified Professional Data Engineer"})
		require.Len(t, got, 1)
		assert.Equal(t, "cloud_certifications", got[0].Category)
	})

	t.Run("unknown terms go to the fallback", func(t *testing.T) {
		got := Categorize(defaults.Skills, []string{"Fortran", "Python"})
		assert.Equal(t, []string{"programming_languages", "other"}, got.Names())
		assert.Equal(t, []string{"Fortran"}, got.Get("other"))
	})

	t.Run("empty", func(t *testing.T) {
		got := Categorize(defaults.Skills, nil)
		assert.Empty(t, got)
		assert.Zero(t, got.Total())
	})
}

func TestCategorizedJSONKeepsOrder(t *testing.T) {
	c := Categorized{
		{Category: "tools_technologies", Terms: []string{"Docker"}},
		{Category: "cloud_platforms", Terms: []string{"AWS", "GCP"}},
		{Category: "other"},
	}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"tools_technologies":["Docker"],"cloud_platforms":["AWS","GCP"],"other":[]}`, string(data))

	data, err = json.Marshal(Categorized{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	wrapped, err := json.Marshal(struct {
		Skills Categorized `json:"skills"`
	}{})
	require.NoError(t, err)
	assert.Equal(t, `{"skills":{}}`, string(wrapped))
}
