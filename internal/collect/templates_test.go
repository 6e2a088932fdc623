package collect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectTemplates_StoresRawText(t *testing.T) {
	dir := t.TempDir()
	body := "<html>{{.name}}</html>\n"
	writeFile(t, dir, "home.html", body)

	collector, err := CollectTemplates(dir)
	require.NoError(t, err)
	require.Equal(t, body, collector.Template("home"))
}

func TestCollectTemplates_UnknownNameReturnsEmpty(t *testing.T) {
	collector, err := CollectTemplates(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, collector.Template("missing"))
}

func TestCollectTemplates_MissingDirectoryIsFatal(t *testing.T) {
	_, err := CollectTemplates(t.TempDir() + "/nope")
	require.Error(t, err)
}
