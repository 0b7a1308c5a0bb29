package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/owldoc/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "en", cfg.PrimaryLanguage)
	assert.Equal(t, 1000, cfg.MaxListNodes)
	assert.Contains(t, cfg.LabelPredicates, "http://www.w3.org/2000/01/rdf-schema#label")
	assert.Contains(t, cfg.CommentPredicates, "http://www.w3.org/2004/02/skos/core#definition")
	assert.NoError(t, cfg.Validate())
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"primary_language":"fr","max_list_nodes":50}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.PrimaryLanguage)
	assert.Equal(t, 50, cfg.MaxListNodes)
	// Unset fields pick up defaults.
	assert.NotEmpty(t, cfg.LabelPredicates)
	assert.NotEmpty(t, cfg.CommentPredicates)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "primary_language: de\nlanguages:\n  - de\n  - en\nreasoning: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.PrimaryLanguage)
	assert.Equal(t, []string{"de", "en"}, cfg.Languages)
	assert.True(t, cfg.Reasoning)
	assert.Equal(t, 1000, cfg.MaxListNodes)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "bad json", file: "cfg.json", content: "{not json"},
		{name: "bad yaml", file: "cfg.yaml", content: "\t- broken"},
		{name: "unknown extension", file: "cfg.toml", content: "a = 1"},
		{name: "negative budget", file: "cfg.json", content: `{"max_list_nodes":-5}`},
		{name: "empty language tag", file: "cfg.json", content: `{"languages":[""]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.PrimaryLanguage = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LabelPredicates = []string{""}
	assert.Error(t, cfg.Validate())
}

func TestToJSON(t *testing.T) {
	assert.Contains(t, Default().ToJSON(), `"primary_language":"en"`)
}
