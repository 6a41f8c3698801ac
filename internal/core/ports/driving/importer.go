package driving

import (
	"context"
	"io"
)

// ImportStats counts what an import wrote.
type ImportStats struct {
	Posts         int `json:"posts"`
	Terms         int `json:"terms"`
	Relationships int `json:"relationships"`
}

// ImportService loads a content dump into the configured store.
type ImportService interface {
	// Import reads a JSON dump from r and writes its terms, posts and
	// relationships. Terms are written first so relationships resolve.
	Import(ctx context.Context, r io.Reader) (*ImportStats, error)
}
