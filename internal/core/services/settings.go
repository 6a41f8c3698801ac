package services

import (
	"fmt"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyTaxonomy    = "navigation.taxonomy"
	KeyDateFormat  = "navigation.date_format"
	KeyLocale      = "navigation.locale"
	KeyPermalink   = "site.permalink"
	KeyStorage     = "storage.driver"
	KeyDataDir     = "storage.data_dir"
	KeyPostgresDSN = "storage.postgres_dsn"
	KeyCache       = "cache.driver"
	KeyRedisURL    = "cache.redis_url"
	KeyCacheTTL    = "cache.ttl_seconds"
)

// Keys lists every recognised config key.
var Keys = []string{
	KeyTaxonomy, KeyDateFormat, KeyLocale, KeyPermalink,
	KeyStorage, KeyDataDir, KeyPostgresDSN,
	KeyCache, KeyRedisURL, KeyCacheTTL,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := LoadSettings(s.configStore)
	return &settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyTaxonomy, settings.Taxonomy},
		{KeyDateFormat, settings.DateLayout},
		{KeyLocale, settings.Locale},
		{KeyPermalink, settings.Permalink},
		{KeyStorage, settings.Storage.Driver},
		{KeyDataDir, settings.Storage.DataDir},
		{KeyPostgresDSN, settings.Storage.PostgresDSN},
		{KeyCache, settings.Cache.Driver},
		{KeyRedisURL, settings.Cache.RedisURL},
		{KeyCacheTTL, settings.Cache.TTLSeconds},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}
	return nil
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings := LoadSettings(s.configStore)

	switch settings.Storage.Driver {
	case domain.DriverSQLite, domain.DriverMemory:
	case domain.DriverPostgres:
		if settings.Storage.PostgresDSN == "" {
			return fmt.Errorf("%w: %s is required for the postgres driver", domain.ErrInvalidInput, KeyPostgresDSN)
		}
	default:
		return fmt.Errorf("%w: storage %q", domain.ErrUnsupportedDriver, settings.Storage.Driver)
	}

	switch settings.Cache.Driver {
	case domain.CacheMemory, domain.CacheNone:
	case domain.CacheRedis:
		if settings.Cache.RedisURL == "" {
			return fmt.Errorf("%w: %s is required for the redis cache", domain.ErrInvalidInput, KeyRedisURL)
		}
	default:
		return fmt.Errorf("%w: cache %q", domain.ErrUnsupportedDriver, settings.Cache.Driver)
	}

	if settings.Cache.TTLSeconds < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, KeyCacheTTL)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// LoadSettings reads settings from a config store, applying defaults
// for anything unset.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	defaults := domain.DefaultSettings()

	return domain.Settings{
		Taxonomy:   getString(store, KeyTaxonomy, defaults.Taxonomy),
		DateLayout: getString(store, KeyDateFormat, defaults.DateLayout),
		Locale:     getString(store, KeyLocale, defaults.Locale),
		Permalink:  getString(store, KeyPermalink, defaults.Permalink),
		Storage: domain.StorageSettings{
			Driver:      getString(store, KeyStorage, defaults.Storage.Driver),
			DataDir:     store.GetString(KeyDataDir),
			PostgresDSN: store.GetString(KeyPostgresDSN),
		},
		Cache: domain.CacheSettings{
			Driver:     getString(store, KeyCache, defaults.Cache.Driver),
			RedisURL:   store.GetString(KeyRedisURL),
			TTLSeconds: store.GetInt(KeyCacheTTL),
		},
	}
}

func getString(store driven.ConfigStore, key, defaultVal string) string {
	if val := store.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
