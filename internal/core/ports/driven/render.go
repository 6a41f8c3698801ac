package driven

import "github.com/custodia-labs/postnav/internal/core/domain"

// Translator localises user-visible strings.
type Translator interface {
	// Translate returns the message in the configured language,
	// or the message unchanged when no translation exists.
	Translate(message string) string
}

// Permalinker builds the public URL of a post.
type Permalinker interface {
	// Permalink returns the absolute or site-relative URL for the post.
	Permalink(p *domain.Post) string
}
