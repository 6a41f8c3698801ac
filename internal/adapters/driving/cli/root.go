// Package cli provides the cobra command tree for postnav.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
	"github.com/custodia-labs/postnav/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
	showStats bool
)

// Services holds the content-backed services. They are opened lazily so
// commands that only touch configuration never connect to a database.
type Services struct {
	Navigation driving.NavigationService
	Import     driving.ImportService

	// Stats writes cache statistics. Optional.
	Stats func(w io.Writer) error

	// Close releases store and cache connections. Optional.
	Close func() error
}

// Wiring supplies the CLI's dependencies.
type Wiring struct {
	// Config opens the configuration store in configDir.
	// An empty configDir selects the default location.
	Config func(configDir string) (driven.ConfigStore, error)

	// Settings builds the settings service over the config store.
	Settings func(cfg driven.ConfigStore) driving.SettingsService

	// Open builds the content services from configuration.
	Open func(ctx context.Context, cfg driven.ConfigStore) (*Services, error)
}

var (
	wiring          *Wiring
	configStore     driven.ConfigStore
	settingsService driving.SettingsService
	active          *Services
)

var rootCmd = &cobra.Command{
	Use:   "postnav",
	Short: "Previous and next post navigation",
	Long: `postnav resolves the previous, next, first and last published post
relative to a given post, optionally restricted to posts that share a
taxonomy term and skipping posts in excluded terms.

It renders the <link rel> and <a rel> navigation markup a theme prints
around a single post, and can browse the timeline interactively.`,
	SilenceUsage:       true,
	PersistentPreRunE:  persistentPreRun,
	PersistentPostRunE: persistentPostRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.postnav)")
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false, "print cache statistics after the command")
}

// SetWiring sets the dependency wiring used by commands.
func SetWiring(w *Wiring) {
	wiring = w
	configStore = nil
	settingsService = nil
	active = nil
}

// Execute runs the root command. Command output goes to stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// Close releases any services opened by the last command.
func Close() error {
	if active == nil || active.Close == nil {
		return nil
	}
	err := active.Close()
	active = nil
	return err
}

func persistentPreRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	return nil
}

// persistentPostRun prints cache statistics when --stats is set.
func persistentPostRun(cmd *cobra.Command, _ []string) error {
	if !showStats || active == nil || active.Stats == nil {
		return nil
	}
	return active.Stats(cmd.ErrOrStderr())
}

// loadConfig opens the config store once per process.
func loadConfig() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	if wiring == nil || wiring.Config == nil {
		return nil, errors.New("config store not configured")
	}

	cfg, err := wiring.Config(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	configStore = cfg
	if wiring.Settings != nil {
		settingsService = wiring.Settings(cfg)
	}
	return cfg, nil
}

// loadServices validates the configuration and opens the content services.
func loadServices(ctx context.Context) (*Services, error) {
	if active != nil {
		return active, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if settingsService != nil {
		if err := settingsService.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	if wiring.Open == nil {
		return nil, errors.New("navigation service not configured")
	}

	svc, err := wiring.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	active = svc
	return svc, nil
}
