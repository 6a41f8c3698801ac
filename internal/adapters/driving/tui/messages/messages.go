// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/postnav/internal/core/domain"
)

// PostLoaded carries the result of a navigation step back to the model.
// Post is nil and Err is domain.ErrNotFound when there is nowhere to go.
type PostLoaded struct {
	Kind domain.LinkKind
	Post *domain.Post
	Err  error
}
