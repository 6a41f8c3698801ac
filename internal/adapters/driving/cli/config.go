package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postnav/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change postnav configuration.

Keys:
  navigation.taxonomy     default taxonomy for term constraints
  navigation.date_format  Go time layout used for %date
  navigation.locale       language of default link labels
  site.permalink          URI template for post links, e.g. /{year}/{month}/{slug}/
  storage.driver          sqlite, postgres or memory
  storage.data_dir        SQLite data directory
  storage.postgres_dsn    Postgres connection string
  cache.driver            memory, redis or none
  cache.redis_url         Redis URL
  cache.ttl_seconds       cache entry lifetime`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func checkKey(key string) error {
	if !slices.Contains(services.Keys, key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := checkKey(args[0]); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	value, _ := cfg.Get(args[0])
	if value == nil {
		value = ""
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := checkKey(key); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	previous, had := cfg.Get(key)
	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	if settingsService != nil {
		if err := settingsService.Validate(); err != nil {
			if !had {
				previous = ""
			}
			if rerr := cfg.Set(key, previous); rerr != nil {
				return fmt.Errorf("%w (restoring previous value: %v)", err, rerr)
			}
			return err
		}
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := services.LoadSettings(cfg)
	rows := []struct {
		key   string
		value any
	}{
		{services.KeyTaxonomy, s.Taxonomy},
		{services.KeyDateFormat, s.DateLayout},
		{services.KeyLocale, s.Locale},
		{services.KeyPermalink, s.Permalink},
		{services.KeyStorage, s.Storage.Driver},
		{services.KeyDataDir, s.Storage.DataDir},
		{services.KeyPostgresDSN, s.Storage.PostgresDSN},
		{services.KeyCache, s.Cache.Driver},
		{services.KeyRedisURL, s.Cache.RedisURL},
		{services.KeyCacheTTL, s.Cache.TTLSeconds},
	}
	for _, r := range rows {
		cmd.Printf("%-24s %v\n", r.key, r.value)
	}
	return nil
}
