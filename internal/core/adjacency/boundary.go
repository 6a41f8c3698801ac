package adjacency

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

// termExists matches posts having a term of the taxonomy in a given set.
const termExists = "EXISTS (SELECT 1 FROM term_relationships AS tr " +
	"INNER JOIN term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id " +
	"WHERE tr.object_id = p.id AND tt.taxonomy = ? AND tt.term_id IN (%s))"

// BuildBoundary constructs the listing used to find the first or last post.
// Included and excluded terms stay in two separate sets; excluded terms
// the current post itself belongs to are dropped.
func BuildBoundary(in Input, b domain.Boundary) domain.BoundaryQuery {
	q := domain.BoundaryQuery{
		Boundary: b,
		Taxonomy: in.Taxonomy,
		PostType: in.Current.Type,
		Status:   domain.StatusPublish,
		Limit:    1,
	}
	if in.InSameTerm {
		q.IncludedTerms = in.IncludedTerms
	}
	q.ExcludedTerms = Subtract(in.ExcludedTerms, q.IncludedTerms)
	return q
}

// BoundarySQL renders a boundary listing for SQL-backed stores.
func BoundarySQL(q domain.BoundaryQuery) (string, []any) {
	var b strings.Builder
	args := []any{q.PostType, q.Status}

	b.WriteString("SELECT ")
	b.WriteString(domain.PostColumns)
	b.WriteString(" FROM posts AS p WHERE p.post_type = ? AND p.post_status = ?")

	if len(q.IncludedTerms) > 0 {
		b.WriteString(" AND ")
		fmt.Fprintf(&b, termExists, joinIDs(q.IncludedTerms))
		args = append(args, q.Taxonomy)
	}
	if len(q.ExcludedTerms) > 0 {
		b.WriteString(" AND NOT ")
		fmt.Fprintf(&b, termExists, joinIDs(q.ExcludedTerms))
		args = append(args, q.Taxonomy)
	}

	fmt.Fprintf(&b, " ORDER BY p.post_date %s", q.Order())

	limit := q.Limit
	if limit <= 0 {
		limit = 1
	}
	b.WriteString(" LIMIT ?")
	args = append(args, limit)

	return b.String(), args
}
