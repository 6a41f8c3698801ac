package domain

import (
	"strings"
	"time"
)

// Clause is a fragment of SQL with its bind arguments.
// Placeholders use the "?" form; stores rebind for their dialect.
type Clause struct {
	SQL  string
	Args []any
}

// AdjacencyQuery is the predicate used to find the post immediately
// before or after a reference post. It is built fresh per call.
type AdjacencyQuery struct {
	// Direction selects previous or next.
	Direction Direction

	// InSameTerm restricts candidates to the included terms.
	InSameTerm bool

	// IncludedTerms are the current post's term IDs (same-term only).
	IncludedTerms []int64

	// ExcludedTerms are term IDs whose posts are skipped.
	// Never overlaps IncludedTerms.
	ExcludedTerms []int64

	// Taxonomy scopes both term sets.
	Taxonomy string

	// Reference is the current post's publish date.
	Reference time.Time

	// PostType must equal the current post's type.
	PostType string

	// Status is the required status, always StatusPublish.
	Status string

	// Join, Where and Sort are the rendered clauses after hooks ran.
	Join  Clause
	Where Clause
	Sort  string
}

// SQL returns the full statement executed by SQL-backed stores.
func (q *AdjacencyQuery) SQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(PostColumns)
	b.WriteString(" FROM posts AS p")
	for _, part := range []string{q.Join.SQL, q.Where.SQL, q.Sort} {
		if part = strings.TrimSpace(part); part != "" {
			b.WriteString(" ")
			b.WriteString(part)
		}
	}
	return b.String()
}

// Args returns the join arguments followed by the where arguments.
func (q *AdjacencyQuery) Args() []any {
	args := make([]any, 0, len(q.Join.Args)+len(q.Where.Args))
	args = append(args, q.Join.Args...)
	return append(args, q.Where.Args...)
}

// PostColumns is the column list every SQL store selects, in scan order.
const PostColumns = "p.id, p.post_date, p.post_type, p.post_status, p.post_title, p.post_name, p.post_parent"

// BoundaryQuery lists posts ordered by publish date for first/last lookups.
// Included and excluded terms are two explicit sets.
type BoundaryQuery struct {
	// Boundary selects first or last.
	Boundary Boundary

	// Taxonomy scopes both term sets.
	Taxonomy string

	// IncludedTerms restricts candidates to posts in any of these terms.
	IncludedTerms []int64

	// ExcludedTerms drops posts in any of these terms.
	ExcludedTerms []int64

	// PostType and Status filter candidates.
	PostType string
	Status   string

	// Limit is the maximum number of posts returned.
	Limit int

	// UpdateTermCache and UpdateMetaCache ask the store to warm its own
	// secondary caches. Boundary lookups leave both off.
	UpdateTermCache bool
	UpdateMetaCache bool
}

// Order returns the sort order for the boundary.
func (q BoundaryQuery) Order() SortOrder {
	return q.Boundary.Order()
}

// Options are the caller-supplied navigation constraints.
type Options struct {
	// InSameTerm restricts results to posts sharing a term with the current post.
	InSameTerm bool

	// ExcludeTerms are term IDs to skip.
	ExcludeTerms []int64

	// ExcludeList is a comma separated list of term IDs to skip.
	// The legacy " and " separator is still accepted.
	ExcludeList string

	// Taxonomy is the taxonomy to match terms in. Defaults to DefaultTaxonomy.
	Taxonomy string
}

// HasExclusions reports whether any exclusion was requested.
func (o Options) HasExclusions() bool {
	return len(o.ExcludeTerms) > 0 || strings.TrimSpace(o.ExcludeList) != ""
}

// TaxonomyOrDefault returns the taxonomy, falling back to fallback.
func (o Options) TaxonomyOrDefault(fallback string) string {
	if o.Taxonomy != "" {
		return o.Taxonomy
	}
	if fallback != "" {
		return fallback
	}
	return DefaultTaxonomy
}
