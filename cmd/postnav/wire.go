package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/postnav/internal/adapters/driven/cache"
	"github.com/custodia-labs/postnav/internal/adapters/driven/config/file"
	"github.com/custodia-labs/postnav/internal/adapters/driven/i18n"
	"github.com/custodia-labs/postnav/internal/adapters/driven/permalink"
	"github.com/custodia-labs/postnav/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/postnav/internal/adapters/driven/storage/postgres"
	"github.com/custodia-labs/postnav/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/postnav/internal/adapters/driving/cli"
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/services"
	"github.com/custodia-labs/postnav/internal/hooks"
	"github.com/custodia-labs/postnav/internal/logger"
)

// memoryConfigDir selects a throwaway in-memory configuration.
const memoryConfigDir = ":memory:"

// openConfig opens the TOML config in configDir, or an in-memory store
// for ":memory:".
func openConfig(configDir string) (driven.ConfigStore, error) {
	if configDir == memoryConfigDir {
		return memory.NewConfigStore(), nil
	}
	return file.NewConfigStore(configDir)
}

// stores groups the ports a storage driver provides.
type stores struct {
	content driven.ContentStore
	terms   driven.TermStore
	writer  driven.ContentWriter
	close   func() error
}

// openServices builds the navigation and import services from configuration.
func openServices(ctx context.Context, cfg driven.ConfigStore) (*cli.Services, error) {
	settings := services.LoadSettings(cfg)

	st, err := openStore(ctx, settings.Storage)
	if err != nil {
		return nil, err
	}

	resultCache, closeCache, err := openCache(settings.Cache)
	if err != nil {
		_ = st.close()
		return nil, err
	}

	links, err := permalink.New(settings.Permalink)
	if err != nil {
		_ = st.close()
		_ = closeCache()
		return nil, err
	}

	instrumented := cache.NewInstrumented(resultCache)
	nav := services.NewNavigationService(st.content, st.terms, instrumented, hooks.NewRegistry())
	nav.SetTranslator(i18n.New(settings.Locale))
	nav.SetPermalinker(links)
	nav.SetSettings(settings)

	logger.Debug("storage=%s cache=%s taxonomy=%s", settings.Storage.Driver, settings.Cache.Driver, settings.Taxonomy)

	return &cli.Services{
		Navigation: nav,
		Import:     services.NewImportService(st.writer),
		Stats:      instrumented.WriteStats,
		Close: func() error {
			return errors.Join(closeCache(), st.close())
		},
	}, nil
}

func openStore(ctx context.Context, s domain.StorageSettings) (*stores, error) {
	switch s.Driver {
	case domain.DriverSQLite:
		store, err := sqlite.NewStore(s.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		logger.Debug("sqlite store at %s", store.Path())
		return &stores{
			content: store.ContentStore(),
			terms:   store.TermStore(),
			writer:  store.ContentWriter(),
			close:   store.Close,
		}, nil

	case domain.DriverPostgres:
		store, err := postgres.NewStore(ctx, s.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return &stores{content: store, terms: store, writer: store, close: store.Close}, nil

	case domain.DriverMemory:
		store := memory.NewContentStore()
		return &stores{content: store, terms: store, writer: store, close: func() error { return nil }}, nil
	}

	return nil, fmt.Errorf("%w: storage %q", domain.ErrUnsupportedDriver, s.Driver)
}

func openCache(c domain.CacheSettings) (driven.ResultCache, func() error, error) {
	ttl := time.Duration(c.TTLSeconds) * time.Second
	noop := func() error { return nil }

	switch c.Driver {
	case domain.CacheMemory:
		return cache.NewMemory(ttl), noop, nil

	case domain.CacheRedis:
		r, err := cache.NewRedis(c.RedisURL, ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open redis cache: %w", err)
		}
		return r, r.Close, nil

	case domain.CacheNone:
		return cache.Nop{}, noop, nil
	}

	return nil, nil, fmt.Errorf("%w: cache %q", domain.ErrUnsupportedDriver, c.Driver)
}
