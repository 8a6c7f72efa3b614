package mlmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadVectorizer(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := writeArtifact(t, "vectorizer.json",
			`{"vocabulary": {"love": 0, "hate": 1}, "idf": [1.2, 3.4]}`)

		v, err := LoadVectorizer(path)
		require.NoError(t, err)
		assert.Equal(t, 2, v.NumFeatures())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadVectorizer(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeArtifact(t, "vectorizer.json", `{"vocabulary": [`)
		_, err := LoadVectorizer(path)
		assert.Error(t, err)
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		path := writeArtifact(t, "vectorizer.json", `{"vocabulary": {}, "idf": []}`)
		_, err := LoadVectorizer(path)
		assert.Error(t, err)
	})

	t.Run("idf length mismatch", func(t *testing.T) {
		path := writeArtifact(t, "vectorizer.json",
			`{"vocabulary": {"love": 0, "hate": 1}, "idf": [1.2]}`)
		_, err := LoadVectorizer(path)
		assert.Error(t, err)
	})

	t.Run("vocabulary index out of range", func(t *testing.T) {
		path := writeArtifact(t, "vectorizer.json",
			`{"vocabulary": {"love": 0, "hate": 5}, "idf": [1.2, 3.4]}`)
		_, err := LoadVectorizer(path)
		assert.Error(t, err)
	})
}

func TestLoadClassifier(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := writeArtifact(t, "classifier.json",
			`{"coefficients": [0.5, -0.5], "intercept": 0.1}`)

		c, err := LoadClassifier(path)
		require.NoError(t, err)
		assert.Equal(t, 2, c.NumFeatures())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadClassifier(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("no coefficients", func(t *testing.T) {
		path := writeArtifact(t, "classifier.json", `{"coefficients": [], "intercept": 0}`)
		_, err := LoadClassifier(path)
		assert.Error(t, err)
	})
}
