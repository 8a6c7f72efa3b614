package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
database:
  type: sqlite
  path: /tmp/test.db
model:
  vectorizer_path: /opt/models/vec.json
  classifier_path: /opt/models/clf.json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "/opt/models/vec.json", cfg.Model.VectorizerPath)
	assert.Equal(t, "/opt/models/clf.json", cfg.Model.ClassifierPath)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `server: {}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "./data/tweets.db", cfg.Database.Path)
	assert.Equal(t, "./models/vectorizer.json", cfg.Model.VectorizerPath)
	assert.Equal(t, "./models/classifier.json", cfg.Model.ClassifierPath)
}

func TestLoadConfig_ExpandsDatabaseURL(t *testing.T) {
	t.Setenv("TEST_DATABASE_URL", "postgres://localhost/tweets")
	path := writeConfig(t, `
database:
  type: postgres
  url: ${TEST_DATABASE_URL}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/tweets", cfg.Database.URL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
