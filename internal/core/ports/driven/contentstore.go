package driven

import (
	"context"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

// ContentStore answers ordered timeline queries over published posts.
// The store is owned by the host system; postnav only reads from it.
type ContentStore interface {
	// GetPost retrieves a post by ID.
	// Returns domain.ErrNotFound if the post does not exist.
	GetPost(ctx context.Context, id int64) (*domain.Post, error)

	// FindAdjacent executes an adjacency query and returns at most one post.
	// Returns domain.ErrNotFound when no post matches.
	FindAdjacent(ctx context.Context, q *domain.AdjacencyQuery) (*domain.Post, error)

	// ListBoundary lists posts ordered by publish date, honouring the
	// included and excluded term sets and the limit.
	ListBoundary(ctx context.Context, q domain.BoundaryQuery) ([]domain.Post, error)
}

// TermStore maps posts to the taxonomy terms they belong to.
type TermStore interface {
	// ObjectTermIDs returns the IDs of the terms attached to a post
	// within a taxonomy, in ascending order.
	ObjectTermIDs(ctx context.Context, postID int64, taxonomy string) ([]int64, error)
}

// ContentWriter loads posts and terms into a store. It backs the import
// command and test fixtures; navigation itself never writes.
type ContentWriter interface {
	// SavePost stores or updates a post.
	SavePost(ctx context.Context, p domain.Post) error

	// SaveTerm stores or updates a term.
	SaveTerm(ctx context.Context, t domain.Term) error

	// AssignTerms attaches terms to a post. Already attached terms are ignored.
	AssignTerms(ctx context.Context, postID int64, termIDs ...int64) error
}
