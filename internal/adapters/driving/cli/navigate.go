package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

// navFlags are the term constraints shared by navigation commands.
type navFlags struct {
	sameTerm bool
	exclude  string
	taxonomy string
}

func (f *navFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.sameTerm, "same-term", "s", false, "only consider posts sharing a term with the current post")
	cmd.Flags().StringVarP(&f.exclude, "exclude", "x", "", "comma separated term IDs to skip")
	cmd.Flags().StringVarP(&f.taxonomy, "taxonomy", "t", "", "taxonomy to match terms in (default from config)")
}

func (f *navFlags) options() domain.Options {
	return domain.Options{
		InSameTerm:  f.sameTerm,
		ExcludeList: f.exclude,
		Taxonomy:    f.taxonomy,
	}
}

func (f *navFlags) reset() {
	*f = navFlags{}
}

var (
	adjacentFlags navFlags
	adjacentNext  bool
	adjacentJSON  bool

	boundaryFlags   navFlags
	boundaryLast    bool
	boundaryArchive bool
	boundaryJSON    bool
)

var adjacentCmd = &cobra.Command{
	Use:   "adjacent <post-id>",
	Short: "Show the previous or next post",
	Long: `Shows the nearest published post of the same type before (default)
or after the given post.

Examples:
  postnav adjacent 42
  postnav adjacent 42 --next --same-term
  postnav adjacent 42 --exclude 3,7 --taxonomy post_tag`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjacent,
}

var boundaryCmd = &cobra.Command{
	Use:   "boundary <post-id>",
	Short: "Show the first or last post",
	Long: `Shows the oldest (default) or newest published post of the same type
as the given post, honouring the same term constraints as adjacent.`,
	Args: cobra.ExactArgs(1),
	RunE: runBoundary,
}

func init() {
	adjacentFlags.register(adjacentCmd)
	adjacentCmd.Flags().BoolVarP(&adjacentNext, "next", "n", false, "show the next post instead of the previous one")
	adjacentCmd.Flags().BoolVar(&adjacentJSON, "json", false, "output the post as JSON")

	boundaryFlags.register(boundaryCmd)
	boundaryCmd.Flags().BoolVarP(&boundaryLast, "last", "l", false, "show the last post instead of the first one")
	boundaryCmd.Flags().BoolVar(&boundaryArchive, "archive", false, "resolve from an archive view, which has no boundaries")
	boundaryCmd.Flags().BoolVar(&boundaryJSON, "json", false, "output the post as JSON")

	rootCmd.AddCommand(adjacentCmd)
	rootCmd.AddCommand(boundaryCmd)
}

func runAdjacent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadServices(ctx)
	if err != nil {
		return err
	}

	current, err := loadPost(cmd, svc, args[0])
	if err != nil {
		return err
	}

	dir := domain.Previous
	if adjacentNext {
		dir = domain.Next
	}

	post, err := svc.Navigation.AdjacentPost(ctx, domain.SingleView(current), adjacentFlags.options(), dir)
	return printResult(cmd, post, err, dir.LinkKind(), adjacentJSON)
}

func runBoundary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := loadServices(ctx)
	if err != nil {
		return err
	}

	current, err := loadPost(cmd, svc, args[0])
	if err != nil {
		return err
	}

	b := domain.Start
	if boundaryLast {
		b = domain.End
	}

	view := domain.SingleView(current)
	view.Single = !boundaryArchive

	post, err := svc.Navigation.BoundaryPost(ctx, view, boundaryFlags.options(), b)
	return printResult(cmd, post, err, b.LinkKind(), boundaryJSON)
}

// loadPost parses a post ID argument and loads the post.
func loadPost(cmd *cobra.Command, svc *Services, arg string) (*domain.Post, error) {
	id, err := parsePostID(arg)
	if err != nil {
		return nil, err
	}
	post, err := svc.Navigation.Post(cmd.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("post %d not found", id)
	}
	return post, err
}

func parsePostID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", arg)
	}
	return id, nil
}

func printResult(cmd *cobra.Command, post *domain.Post, err error, kind domain.LinkKind, asJSON bool) error {
	if errors.Is(err, domain.ErrNotFound) {
		if asJSON {
			cmd.Println("null")
			return nil
		}
		cmd.Printf("No %s post.\n", kind)
		return nil
	}
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(post, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal post: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	title := post.Title
	if title == "" {
		title = "(untitled)"
	}
	cmd.Printf("#%d  %s  %s\n", post.ID, post.Date.Format("2006-01-02 15:04"), title)
	return nil
}
