package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
)

var (
	linksFlags      navFlags
	linksTitle      string
	linksLink       string
	linksPrevFormat string
	linksNextFormat string
)

var linksCmd = &cobra.Command{
	Use:   "links <post-id>",
	Short: "Render navigation markup for a post",
	Long: `Renders the markup a theme prints around a single post: the
<link rel="prev|next|start|end"> elements for the document head, followed
by the previous and next <a rel> anchors.

Templates accept %title and %date. Formats accept %link.

Examples:
  postnav links 42
  postnav links 42 --same-term --title "%title (%date)"`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

func init() {
	linksFlags.register(linksCmd)
	linksCmd.Flags().StringVar(&linksTitle, "title", driving.DefaultTitleTemplate, "title template for <link> elements")
	linksCmd.Flags().StringVar(&linksLink, "link", driving.DefaultLinkTemplate, "text template for anchors")
	linksCmd.Flags().StringVar(&linksPrevFormat, "prev-format", driving.DefaultPreviousFormat, "format wrapping the previous anchor")
	linksCmd.Flags().StringVar(&linksNextFormat, "next-format", driving.DefaultNextFormat, "format wrapping the next anchor")
	rootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadServices(ctx)
	if err != nil {
		return err
	}

	current, err := loadPost(cmd, svc, args[0])
	if err != nil {
		return err
	}

	nav := svc.Navigation
	view := domain.SingleView(current)
	opts := linksFlags.options()
	w := cmd.OutOrStdout()

	if err := nav.WriteStartRelLink(ctx, w, view, linksTitle, opts); err != nil {
		return err
	}
	if err := nav.WriteAdjacentRelLinks(ctx, w, view, linksTitle, opts); err != nil {
		return err
	}
	if err := nav.WriteEndRelLink(ctx, w, view, linksTitle, opts); err != nil {
		return err
	}

	prev, err := nav.AnchorLink(ctx, view, domain.Previous, linksPrevFormat, linksLink, opts)
	if err != nil {
		return err
	}
	next, err := nav.AnchorLink(ctx, view, domain.Next, linksNextFormat, linksLink, opts)
	if err != nil {
		return err
	}
	if prev != "" {
		cmd.Println(prev)
	}
	if next != "" {
		cmd.Println(next)
	}
	return nil
}
