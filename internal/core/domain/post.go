package domain

import "time"

// Post statuses and types understood by the resolver.
const (
	// StatusPublish is the only status adjacent and boundary lookups consider.
	StatusPublish = "publish"

	// TypePost is the default content type.
	TypePost = "post"

	// TypeAttachment marks media items that hang off a parent post.
	TypeAttachment = "attachment"
)

// DefaultTaxonomy is the taxonomy used when none is given.
const DefaultTaxonomy = "category"

// Post represents a content item on the publication timeline.
// Posts are owned by the external content store; postnav only reads them.
type Post struct {
	// ID is the unique identifier for the post.
	ID int64 `json:"id"`

	// Date is the publish timestamp in UTC. Timeline order is by Date.
	Date time.Time `json:"date"`

	// Type is the content type (e.g. "post", "page", "attachment").
	Type string `json:"type"`

	// Status is the publication status (e.g. "publish", "draft").
	Status string `json:"status"`

	// Title is the human-readable title. May be empty.
	Title string `json:"title,omitempty"`

	// Name is the URL slug.
	Name string `json:"name,omitempty"`

	// ParentID links an attachment to the post it belongs to.
	// Zero when the post has no parent.
	ParentID int64 `json:"parent_id,omitempty"`
}

// IsAttachment reports whether the post is an attachment.
func (p *Post) IsAttachment() bool {
	return p != nil && p.Type == TypeAttachment
}

// Term represents a taxonomy term that posts can be grouped under.
type Term struct {
	// ID is the term identifier. Real terms start at 1.
	ID int64 `json:"id"`

	// Taxonomy is the taxonomy the term belongs to (e.g. "category").
	Taxonomy string `json:"taxonomy"`

	// Name is the display name.
	Name string `json:"name"`

	// Slug is the URL-safe name.
	Slug string `json:"slug,omitempty"`
}

// View is the request-scoped rendering context.
// It replaces an ambient "current post" with an explicit value.
type View struct {
	// Post is the post currently being rendered. Nil when there is none.
	Post *Post

	// Single is true when the request renders a single post
	// (as opposed to an archive or listing).
	Single bool
}

// SingleView returns a View for a single-post request.
func SingleView(p *Post) View {
	return View{Post: p, Single: true}
}
