// Package adjacency builds the predicates used to find adjacent and
// boundary posts, and derives deterministic cache keys from them.
//
// Builders are pure: they take already-resolved term IDs and produce
// query values. Term resolution, caching and execution live in the
// navigation service.
package adjacency

import (
	"fmt"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/hooks"
)

// termJoin joins posts to their taxonomy terms.
const termJoin = "INNER JOIN term_relationships AS tr ON p.id = tr.object_id " +
	"INNER JOIN term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id"

// Input is everything needed to build an adjacency query.
type Input struct {
	// Current is the reference post. Must be non-nil.
	Current *domain.Post

	// Direction selects previous or next.
	Direction domain.Direction

	// InSameTerm restricts candidates to IncludedTerms.
	InSameTerm bool

	// IncludedTerms are the current post's term IDs under Taxonomy.
	IncludedTerms []int64

	// ExcludedTerms is the normalised exclusion set as requested.
	// Overlap with IncludedTerms is removed by Build.
	ExcludedTerms []int64

	// Taxonomy scopes term matching.
	Taxonomy string
}

// Build constructs the adjacency query for in, running the join, where
// and sort hooks of r before returning. r may be nil.
func Build(in Input, r *hooks.Registry) *domain.AdjacencyQuery {
	excluded := in.ExcludedTerms
	if in.InSameTerm && len(in.IncludedTerms) > 0 {
		excluded = Subtract(excluded, in.IncludedTerms)
	}

	q := &domain.AdjacencyQuery{
		Direction:     in.Direction,
		InSameTerm:    in.InSameTerm,
		ExcludedTerms: excluded,
		Taxonomy:      in.Taxonomy,
		Reference:     in.Current.Date.UTC(),
		PostType:      in.Current.Type,
		Status:        domain.StatusPublish,
	}
	if in.InSameTerm {
		q.IncludedTerms = in.IncludedTerms
	}

	joined := in.InSameTerm || len(in.ExcludedTerms) > 0

	var join domain.Clause
	if joined {
		join.SQL = termJoin
		if in.InSameTerm {
			join.SQL += fmt.Sprintf(" AND tt.taxonomy = ? AND tt.term_id IN (%s)", joinIDs(in.IncludedTerms))
			join.Args = []any{in.Taxonomy}
		}
	}

	where := domain.Clause{
		SQL: fmt.Sprintf("WHERE p.post_date %s ? AND p.post_type = ? AND p.post_status = '%s'",
			in.Direction.Comparator(), domain.StatusPublish),
		Args: []any{q.Reference, q.PostType},
	}
	switch {
	case len(excluded) > 0:
		where.SQL += fmt.Sprintf(" AND tt.taxonomy = ? AND tt.term_id NOT IN (%s)", joinIDs(excluded))
		where.Args = append(where.Args, in.Taxonomy)
	case in.InSameTerm && len(in.ExcludedTerms) == 0:
		where.SQL += " AND tt.taxonomy = ?"
		where.Args = append(where.Args, in.Taxonomy)
	}

	sort := fmt.Sprintf("ORDER BY p.post_date %s LIMIT 1", in.Direction.Order())

	qc := hooks.QueryContext{
		Direction:     in.Direction,
		InSameTerm:    in.InSameTerm,
		ExcludedTerms: excluded,
	}
	q.Join = r.ApplyJoin(join, qc)
	q.Where = r.ApplyWhere(where, qc)
	q.Sort = r.ApplySort(sort, qc)

	return q
}
