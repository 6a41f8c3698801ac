package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postnav/internal/adapters/driven/config/file"
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/services"
)

const dump = `{
  "terms": [{"id": 10, "name": "News"}],
  "posts": [
    {"id": 1, "date": "2020-01-01T10:00:00Z", "title": "", "name": "hello", "terms": [10]},
    {"id": 2, "date": "2020-02-01T10:00:00Z", "title": "Second", "name": "second", "terms": [10]}
  ]
}`

func newConfig(t *testing.T, values map[string]any) *file.ConfigStore {
	t.Helper()
	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	for k, v := range values {
		require.NoError(t, cfg.Set(k, v))
	}
	return cfg
}

func TestOpenServices_MemoryStore(t *testing.T) {
	ctx := context.Background()
	cfg := newConfig(t, map[string]any{
		services.KeyStorage:   domain.DriverMemory,
		services.KeyLocale:    "de",
		services.KeyPermalink: "/{year}/{month}/{slug}/",
	})

	svc, err := openServices(ctx, cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	_, err = svc.Import.Import(ctx, strings.NewReader(dump))
	require.NoError(t, err)

	current, err := svc.Navigation.Post(ctx, 2)
	require.NoError(t, err)

	link, err := svc.Navigation.RelLink(ctx, domain.SingleView(current), domain.Previous, "", domain.Options{})
	require.NoError(t, err)
	assert.Equal(t, "<link rel='prev' title='Vorheriger Beitrag' href='/2020/01/hello/' />\n", link)

	var stats bytes.Buffer
	require.NoError(t, svc.Stats(&stats))
	assert.Contains(t, stats.String(), `result="miss"`)
}

func TestOpenServices_SQLiteStore(t *testing.T) {
	ctx := context.Background()
	cfg := newConfig(t, map[string]any{
		services.KeyDataDir: t.TempDir(),
		services.KeyCache:   domain.CacheNone,
	})

	svc, err := openServices(ctx, cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	_, err = svc.Import.Import(ctx, strings.NewReader(dump))
	require.NoError(t, err)

	current, err := svc.Navigation.Post(ctx, 1)
	require.NoError(t, err)

	next, err := svc.Navigation.NextPost(ctx, domain.SingleView(current), domain.Options{InSameTerm: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestOpenServices_RedisCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cfg := newConfig(t, map[string]any{
		services.KeyStorage:  domain.DriverMemory,
		services.KeyCache:    domain.CacheRedis,
		services.KeyRedisURL: "redis://" + mr.Addr(),
		services.KeyCacheTTL: 60,
	})

	svc, err := openServices(ctx, cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	_, err = svc.Import.Import(ctx, strings.NewReader(dump))
	require.NoError(t, err)

	current, err := svc.Navigation.Post(ctx, 2)
	require.NoError(t, err)

	for range 2 {
		prev, err := svc.Navigation.PreviousPost(ctx, domain.SingleView(current), domain.Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), prev.ID)
	}

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "postnav:counts:"))
	assert.Equal(t, 60*time.Second, mr.TTL(keys[0]))

	var stats bytes.Buffer
	require.NoError(t, svc.Stats(&stats))
	assert.Contains(t, stats.String(), `result="hit"} 1`)
}

func TestOpenServices_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := openServices(ctx, newConfig(t, map[string]any{services.KeyStorage: "mysql"}))
	assert.ErrorIs(t, err, domain.ErrUnsupportedDriver)

	_, err = openServices(ctx, newConfig(t, map[string]any{
		services.KeyStorage: domain.DriverMemory,
		services.KeyCache:   "memcached",
	}))
	assert.ErrorIs(t, err, domain.ErrUnsupportedDriver)

	_, err = openServices(ctx, newConfig(t, map[string]any{
		services.KeyStorage: domain.DriverPostgres,
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = openServices(ctx, newConfig(t, map[string]any{
		services.KeyStorage:   domain.DriverMemory,
		services.KeyPermalink: "/{broken",
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpenConfig(t *testing.T) {
	cfg, err := openConfig(memoryConfigDir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set(services.KeyTaxonomy, "post_tag"))
	assert.Equal(t, "post_tag", cfg.GetString(services.KeyTaxonomy))

	dir := t.TempDir()
	cfg, err = openConfig(dir)
	require.NoError(t, err)
	assert.IsType(t, &file.ConfigStore{}, cfg)
}
