package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postnav/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/postnav/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
	assert.Equal(t, "category", settings.Taxonomy)
	assert.Equal(t, "sqlite", settings.Storage.Driver)
}

func TestSettingsService_Get_FromConfig(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		KeyTaxonomy:   "post_tag",
		KeyDateFormat: "Jan 2, 2006",
		KeyStorage:    "postgres",
		KeyCacheTTL:   "90",
	})

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, "post_tag", settings.Taxonomy)
	assert.Equal(t, "Jan 2, 2006", settings.DateLayout)
	assert.Equal(t, "postgres", settings.Storage.Driver)
	assert.Equal(t, 90, settings.Cache.TTLSeconds)
	assert.Equal(t, domain.DefaultLocale, settings.Locale)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	want := domain.DefaultSettings()
	want.Locale = "de"
	want.Cache.Driver = domain.CacheRedis
	want.Cache.RedisURL = "redis://localhost:6379/0"
	want.Cache.TTLSeconds = 60
	require.NoError(t, svc.Save(&want))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_Save_Nil(t *testing.T) {
	err := NewSettingsService(memory.NewConfigStore()).Save(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
	}{
		{"defaults", nil, nil},
		{"memory store no cache", map[string]any{KeyStorage: "memory", KeyCache: "none"}, nil},
		{"unknown storage", map[string]any{KeyStorage: "mysql"}, domain.ErrUnsupportedDriver},
		{"unknown cache", map[string]any{KeyCache: "memcached"}, domain.ErrUnsupportedDriver},
		{"postgres without dsn", map[string]any{KeyStorage: "postgres"}, domain.ErrInvalidInput},
		{"postgres with dsn", map[string]any{KeyStorage: "postgres", KeyPostgresDSN: "postgres://x"}, nil},
		{"redis without url", map[string]any{KeyCache: "redis"}, domain.ErrInvalidInput},
		{"negative ttl", map[string]any{KeyCacheTTL: -1}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSettingsService(memory.NewConfigStoreWith(tt.values)).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
