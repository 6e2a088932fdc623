package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"folio/internal/builder"
	"folio/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestCreateNewSite_ScaffoldBuildsCleanly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateNewSite(filepath.Join(root, "mysite")))

	chdir(t, filepath.Join(root, "mysite"))

	cfg, err := config.Load(config.DefaultFilename)
	require.NoError(t, err)
	require.Equal(t, []string{"projects"}, cfg.DataIndexes)

	b, err := builder.New(cfg, builder.Options{})
	require.NoError(t, err)
	pages, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 4, pages)

	require.FileExists(t, "build/index.html")
	require.FileExists(t, "build/projects.html")
	require.FileExists(t, "build/posts/index.html")
	require.FileExists(t, "build/posts/welcome.html")
	require.FileExists(t, "build/static/style.css")
}

func TestCreateNewPost(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("posts", 0755))

	require.NoError(t, CreateNewPost("My First Post", config.DefaultFilename))
	require.FileExists(t, "posts/my-first-post.md")

	content, err := os.ReadFile("posts/my-first-post.md")
	require.NoError(t, err)
	require.Contains(t, string(content), `"title": "My First Post"`)
	require.Contains(t, string(content), `"date"`)
}

func TestCreateNewPost_RefusesToOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("posts", 0755))
	require.NoError(t, os.WriteFile("posts/taken.md", []byte("x"), 0644))

	require.Error(t, CreateNewPost("Taken", config.DefaultFilename))
}
