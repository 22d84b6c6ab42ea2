package metriclib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPredefined(t *testing.T) {

	metrics := Predefined()
	require.Len(t, metrics, 5)

	assert.Equal(t, "market_defense", metrics[0].ID)
	assert.Equal(t, "exit_frags", metrics[4].ID)

	seen := map[string]bool{}
	for _, metric := range metrics {
		assert.NotEmpty(t, metric.Name)
		assert.NotEmpty(t, metric.Description)
		assert.False(t, seen[metric.ID], "duplicate id %s", metric.ID)
		seen[metric.ID] = true
	}
}

func TestLibraryDocumentsParse(t *testing.T) {

	entries := Library()
	require.Len(t, entries, 3)

	for _, entry := range entries {
		var doc struct {
			Metrics []struct {
				Name string `yaml:"name"`
			} `yaml:"metrics"`
		}
		err := yaml.Unmarshal([]byte(entry.Document), &doc)
		require.NoError(t, err, entry.ID)
		require.Len(t, doc.Metrics, 1, entry.ID)
		assert.NotEmpty(t, doc.Metrics[0].Name, entry.ID)
	}
}

func TestLoadLibrary(t *testing.T) {

	path := filepath.Join(t.TempDir(), "library.yml")
	doc := `entries:
  - id: peek_timing
    name: Peek Timing
    author: coach_viper
    rating: 3
    description: First contact timing by round phase
    document: |
      metrics:
        - name: Peek_Timing
`
	err := os.WriteFile(path, []byte(doc), 0644)
	require.NoError(t, err)

	entries, err := LoadLibrary(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Peek Timing", entries[0].Name)
	assert.Equal(t, 3, entries[0].Rating)
}
