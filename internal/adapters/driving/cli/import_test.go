package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd(t *testing.T) {
	store := setupCLI(t)

	path := filepath.Join(t.TempDir(), "dump.json")
	dump := `{
  "terms": [{"id": 30, "name": "Later"}],
  "posts": [{"id": 4, "date": "2020-01-04T10:00:00Z", "title": "Four", "terms": [30]}]
}`
	require.NoError(t, os.WriteFile(path, []byte(dump), 0600))

	out, err := run(t, "import", path)
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 terms, 1 posts, 1 relationships.\n", out)

	post, err := store.GetPost(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Four", post.Title)

	out, err = run(t, "adjacent", "3", "--next")
	require.NoError(t, err)
	assert.Contains(t, out, "Four")
}

func TestImportCmd_MissingFile(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dump")
}
