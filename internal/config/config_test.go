package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, "%d%m%y", cfg.DateFormat)
	require.True(t, cfg.CreatePublicDir)
}

func TestLoad_JSONOverridesOnlyListedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_indexs": ["projects"], "date_format": "%Y-%m-%d"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"projects"}, cfg.DataIndexes)
	require.Equal(t, "%Y-%m-%d", cfg.DateFormat)
	// Untouched keys keep their defaults.
	require.Equal(t, "templates", cfg.TemplateDir)
	require.Equal(t, "home.html", cfg.HomeTemplate)
}

func TestLoad_YAMLVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("posts_dir: writing\nverbose_mode: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "writing", cfg.PostsDir)
	require.True(t, cfg.VerboseMode)
	require.Equal(t, "data", cfg.DataDir)
}

func TestLoad_MalformedFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
