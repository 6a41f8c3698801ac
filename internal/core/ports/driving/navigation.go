package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

// NavigationService resolves adjacent and boundary posts and renders
// the navigation links templates print around a post.
//
// Every method takes the request's View explicitly. A View without a
// post yields domain.ErrNoCurrentPost from lookups and an empty string
// from link renderers.
type NavigationService interface {
	// Post loads the post a view is built around.
	// Returns domain.ErrNotFound if it does not exist.
	Post(ctx context.Context, id int64) (*domain.Post, error)

	// PreviousPost returns the nearest older published post.
	PreviousPost(ctx context.Context, view domain.View, opts domain.Options) (*domain.Post, error)

	// NextPost returns the nearest newer published post.
	NextPost(ctx context.Context, view domain.View, opts domain.Options) (*domain.Post, error)

	// AdjacentPost returns the previous or next post.
	// Returns domain.ErrNotFound when there is none.
	AdjacentPost(ctx context.Context, view domain.View, opts domain.Options, dir domain.Direction) (*domain.Post, error)

	// BoundaryPost returns the first or last post. Only single,
	// non-attachment views have boundaries.
	BoundaryPost(ctx context.Context, view domain.View, opts domain.Options, b domain.Boundary) (*domain.Post, error)

	// RelLink renders a <link rel="prev|next"> element.
	RelLink(ctx context.Context, view domain.View, dir domain.Direction, title string, opts domain.Options) (string, error)

	// BoundaryRelLink renders a <link rel="start|end"> element.
	BoundaryRelLink(ctx context.Context, view domain.View, b domain.Boundary, title string, opts domain.Options) (string, error)

	// AnchorLink renders an <a rel="prev|next"> element inside format.
	AnchorLink(ctx context.Context, view domain.View, dir domain.Direction, format, link string, opts domain.Options) (string, error)

	// WritePreviousRelLink writes the previous relational link.
	WritePreviousRelLink(ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options) error

	// WriteNextRelLink writes the next relational link.
	WriteNextRelLink(ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options) error

	// WriteAdjacentRelLinks writes the previous then the next relational link.
	WriteAdjacentRelLinks(ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options) error

	// WriteStartRelLink writes the first-post relational link.
	WriteStartRelLink(ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options) error

	// WriteEndRelLink writes the last-post relational link.
	WriteEndRelLink(ctx context.Context, w io.Writer, view domain.View, title string, opts domain.Options) error

	// WritePreviousLink writes the previous anchor link.
	WritePreviousLink(ctx context.Context, w io.Writer, view domain.View, format, link string, opts domain.Options) error

	// WriteNextLink writes the next anchor link.
	WriteNextLink(ctx context.Context, w io.Writer, view domain.View, format, link string, opts domain.Options) error
}

// Link template defaults.
const (
	DefaultTitleTemplate  = "%title"
	DefaultLinkTemplate   = "%title"
	DefaultPreviousFormat = "&laquo; %link"
	DefaultNextFormat     = "%link &raquo;"
)
