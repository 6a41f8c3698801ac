package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postnav/internal/adapters/driven/cache"
	"github.com/custodia-labs/postnav/internal/adapters/driven/config/file"
	"github.com/custodia-labs/postnav/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
	"github.com/custodia-labs/postnav/internal/core/services"
	"github.com/custodia-labs/postnav/internal/hooks"
)

// resetFlags restores every package-level flag variable to its default.
func resetFlags() {
	verbose = false
	configDir = ""
	showStats = false

	adjacentFlags.reset()
	adjacentNext = false
	adjacentJSON = false

	boundaryFlags.reset()
	boundaryLast = false
	boundaryArchive = false
	boundaryJSON = false

	linksFlags.reset()
	linksTitle = driving.DefaultTitleTemplate
	linksLink = driving.DefaultLinkTemplate
	linksPrevFormat = driving.DefaultPreviousFormat
	linksNextFormat = driving.DefaultNextFormat

	browseFlags.reset()
}

// setupCLI wires the commands to an in-memory store holding three posts.
// Posts 1 and 3 are in category 10, post 2 in category 20.
func setupCLI(t *testing.T) *memory.ContentStore {
	t.Helper()
	ctx := context.Background()
	store := memory.NewContentStore()

	base := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"One", "Two", "Three"} {
		require.NoError(t, store.SavePost(ctx, domain.Post{
			ID:     int64(i + 1),
			Date:   base.AddDate(0, 0, i),
			Type:   domain.TypePost,
			Status: domain.StatusPublish,
			Title:  title,
		}))
	}
	require.NoError(t, store.SaveTerm(ctx, domain.Term{ID: 10, Taxonomy: domain.DefaultTaxonomy, Name: "A"}))
	require.NoError(t, store.SaveTerm(ctx, domain.Term{ID: 20, Taxonomy: domain.DefaultTaxonomy, Name: "B"}))
	require.NoError(t, store.AssignTerms(ctx, 1, 10))
	require.NoError(t, store.AssignTerms(ctx, 2, 20))
	require.NoError(t, store.AssignTerms(ctx, 3, 10))

	dir := t.TempDir()
	SetWiring(&Wiring{
		Config: func(string) (driven.ConfigStore, error) {
			return file.NewConfigStore(dir)
		},
		Settings: func(cfg driven.ConfigStore) driving.SettingsService {
			return services.NewSettingsService(cfg)
		},
		Open: func(_ context.Context, _ driven.ConfigStore) (*Services, error) {
			stats := cache.NewInstrumented(cache.NewMemory(0))
			return &Services{
				Navigation: services.NewNavigationService(store, store, stats, hooks.NewRegistry()),
				Import:     services.NewImportService(store),
				Stats:      stats.WriteStats,
			}, nil
		},
	})

	t.Cleanup(func() {
		_ = Close()
		SetWiring(nil)
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return store
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
