package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("navigation.taxonomy", "post_tag"))

	val, ok := store.Get("navigation.taxonomy")
	assert.True(t, ok)
	assert.Equal(t, "post_tag", val)
	assert.Equal(t, "post_tag", store.GetString("navigation.taxonomy"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing.key"))
	assert.Zero(t, store.GetInt("missing.key"))
	assert.False(t, store.GetBool("missing.key"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("cache.ttl_seconds", 300))
	assert.Equal(t, 300, store.GetInt("cache.ttl_seconds"))

	require.NoError(t, store.Set("cache.ttl_seconds", " 60 "))
	assert.Equal(t, 60, store.GetInt("cache.ttl_seconds"))

	require.NoError(t, store.Set("cache.ttl_seconds", "sixty"))
	assert.Zero(t, store.GetInt("cache.ttl_seconds"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("flag.a", true))
	require.NoError(t, store.Set("flag.b", "true"))
	require.NoError(t, store.Set("flag.c", "nope"))

	assert.True(t, store.GetBool("flag.a"))
	assert.True(t, store.GetBool("flag.b"))
	assert.False(t, store.GetBool("flag.c"))
}

func TestConfigStore_Persistence_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("navigation.taxonomy", "category"))
	require.NoError(t, store.Set("cache.ttl_seconds", 120))
	require.NoError(t, store.Set("storage.driver", "sqlite"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[navigation]")
	assert.Contains(t, string(raw), "[cache]")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "category", reopened.GetString("navigation.taxonomy"))
	assert.Equal(t, 120, reopened.GetInt("cache.ttl_seconds"))
	assert.Equal(t, "sqlite", reopened.GetString("storage.driver"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[navigation]
taxonomy = "post_tag"
locale = "de"

[site]
permalink = "https://example.com/{year}/{slug}/"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "post_tag", store.GetString("navigation.taxonomy"))
	assert.Equal(t, "de", store.GetString("navigation.locale"))
	assert.Equal(t, "https://example.com/{year}/{slug}/", store.GetString("site.permalink"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("cache.ttl_seconds", i)
			_ = store.GetInt("cache.ttl_seconds")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("cache.ttl_seconds")
	assert.True(t, ok)
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"navigation.taxonomy": "category",
		"navigation.locale":   "en",
		"top":                 1,
	})

	assert.Equal(t, map[string]any{
		"navigation": map[string]any{"taxonomy": "category", "locale": "en"},
		"top":        1,
	}, nested)
	assert.Equal(t, map[string]any{
		"navigation.taxonomy": "category",
		"navigation.locale":   "en",
		"top":                 1,
	}, flattenMap(nested, ""))
}
