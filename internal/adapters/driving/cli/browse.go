package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/postnav/internal/adapters/driving/tui"
)

var browseFlags navFlags

// isTerminal reports whether stdout is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runBrowser starts the interactive browser. Replaced in tests.
var runBrowser = tui.Run

var browseCmd = &cobra.Command{
	Use:   "browse <post-id>",
	Short: "Browse the timeline interactively",
	Long: `Opens an interactive view of the given post and moves along the
timeline with the keyboard.

Controls:
  ←/h, →/l - Previous / next post
  g, G     - First / last post
  s        - Toggle same-term navigation
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	browseFlags.register(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return errors.New("browse requires an interactive terminal")
	}

	ctx := cmd.Context()
	svc, err := loadServices(ctx)
	if err != nil {
		return err
	}

	current, err := loadPost(cmd, svc, args[0])
	if err != nil {
		return err
	}

	ports := &tui.Ports{
		Navigation: svc.Navigation,
		Start:      current,
		Options:    browseFlags.options(),
	}
	if err := runBrowser(ctx, ports); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
