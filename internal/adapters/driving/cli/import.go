package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import posts and terms from a JSON dump",
	Long: `Loads posts, terms and term relationships into the configured store.

The dump has the form:

  {
    "terms": [{"id": 10, "taxonomy": "category", "name": "News"}],
    "posts": [{"id": 1, "date": "2020-01-01T10:00:00Z", "title": "Hello", "terms": [10]}]
  }

Posts default to type "post" and status "publish". Existing rows are updated.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadServices(ctx)
	if err != nil {
		return err
	}
	if svc.Import == nil {
		return errors.New("import service not configured")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	stats, err := svc.Import.Import(ctx, f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d terms, %d posts, %d relationships.\n", stats.Terms, stats.Posts, stats.Relationships)
	return nil
}
