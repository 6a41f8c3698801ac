package adjacency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/hooks"
)

var refDate = time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)

func currentPost() *domain.Post {
	return &domain.Post{ID: 10, Date: refDate, Type: domain.TypePost, Status: domain.StatusPublish}
}

func TestBuild_PreviousWithoutTerms(t *testing.T) {
	q := Build(Input{Current: currentPost(), Direction: domain.Previous, Taxonomy: "category"}, nil)

	assert.Empty(t, q.Join.SQL)
	assert.Equal(t, "WHERE p.post_date < ? AND p.post_type = ? AND p.post_status = 'publish'", q.Where.SQL)
	assert.Equal(t, []any{refDate, "post"}, q.Where.Args)
	assert.Equal(t, "ORDER BY p.post_date DESC LIMIT 1", q.Sort)
	assert.Equal(t, domain.StatusPublish, q.Status)
	assert.Equal(t, "post", q.PostType)
	assert.Equal(t, refDate, q.Reference)
}

func TestBuild_NextComparatorAndOrder(t *testing.T) {
	q := Build(Input{Current: currentPost(), Direction: domain.Next, Taxonomy: "category"}, nil)

	assert.Contains(t, q.Where.SQL, "p.post_date > ?")
	assert.Equal(t, "ORDER BY p.post_date ASC LIMIT 1", q.Sort)
}

func TestBuild_SameTerm(t *testing.T) {
	q := Build(Input{
		Current:       currentPost(),
		Direction:     domain.Previous,
		InSameTerm:    true,
		IncludedTerms: []int64{2, 5},
		Taxonomy:      "category",
	}, nil)

	assert.Equal(t, termJoin+" AND tt.taxonomy = ? AND tt.term_id IN (2,5)", q.Join.SQL)
	assert.Equal(t, []any{"category"}, q.Join.Args)
	assert.Contains(t, q.Where.SQL, "AND tt.taxonomy = ?")
	assert.NotContains(t, q.Where.SQL, "NOT IN")
	assert.Equal(t, []int64{2, 5}, q.IncludedTerms)
}

func TestBuild_ExclusionOnly(t *testing.T) {
	q := Build(Input{
		Current:       currentPost(),
		Direction:     domain.Next,
		ExcludedTerms: []int64{3, 4},
		Taxonomy:      "category",
	}, nil)

	assert.Equal(t, termJoin, q.Join.SQL)
	assert.Empty(t, q.Join.Args)
	assert.Contains(t, q.Where.SQL, "AND tt.taxonomy = ? AND tt.term_id NOT IN (3,4)")
	assert.Equal(t, []any{refDate, "post", "category"}, q.Where.Args)
	assert.Nil(t, q.IncludedTerms)
}

func TestBuild_InclusionWinsOverExclusion(t *testing.T) {
	q := Build(Input{
		Current:       currentPost(),
		Direction:     domain.Previous,
		InSameTerm:    true,
		IncludedTerms: []int64{2},
		ExcludedTerms: []int64{2, 7},
		Taxonomy:      "category",
	}, nil)

	assert.Equal(t, []int64{7}, q.ExcludedTerms)
	assert.Contains(t, q.Where.SQL, "NOT IN (7)")
}

func TestBuild_AllExclusionsOverlapOmitsClause(t *testing.T) {
	q := Build(Input{
		Current:       currentPost(),
		Direction:     domain.Previous,
		InSameTerm:    true,
		IncludedTerms: []int64{2},
		ExcludedTerms: []int64{2},
		Taxonomy:      "category",
	}, nil)

	assert.Empty(t, q.ExcludedTerms)
	assert.Equal(t, "WHERE p.post_date < ? AND p.post_type = ? AND p.post_status = 'publish'", q.Where.SQL)
	assert.Equal(t, []any{refDate, "post"}, q.Where.Args)
}

func TestBuild_OverlapIgnoredWithoutSameTerm(t *testing.T) {
	q := Build(Input{
		Current:       currentPost(),
		Direction:     domain.Previous,
		IncludedTerms: []int64{2},
		ExcludedTerms: []int64{2},
		Taxonomy:      "category",
	}, nil)

	assert.Equal(t, []int64{2}, q.ExcludedTerms)
	assert.Contains(t, q.Where.SQL, "NOT IN (2)")
}

func TestBuild_HooksRewriteClauses(t *testing.T) {
	r := hooks.NewRegistry()
	r.OnWhere(domain.Previous, func(c domain.Clause, qc hooks.QueryContext) domain.Clause {
		c.SQL += " AND p.post_title <> ?"
		c.Args = append(c.Args, "")
		return c
	})
	r.OnSort(domain.Previous, func(s string, _ hooks.QueryContext) string {
		return "ORDER BY p.post_date DESC, p.id DESC LIMIT 1"
	})

	q := Build(Input{Current: currentPost(), Direction: domain.Previous, Taxonomy: "category"}, r)

	assert.Contains(t, q.Where.SQL, "AND p.post_title <> ?")
	assert.Equal(t, []any{refDate, "post", ""}, q.Where.Args)
	assert.Equal(t, "ORDER BY p.post_date DESC, p.id DESC LIMIT 1", q.Sort)
	assert.Contains(t, q.SQL(), "ORDER BY p.post_date DESC, p.id DESC LIMIT 1")
}

func TestBuild_HookContextCarriesFinalExclusions(t *testing.T) {
	r := hooks.NewRegistry()
	var seen hooks.QueryContext
	r.OnJoin(domain.Next, func(c domain.Clause, qc hooks.QueryContext) domain.Clause {
		seen = qc
		return c
	})

	Build(Input{
		Current:       currentPost(),
		Direction:     domain.Next,
		InSameTerm:    true,
		IncludedTerms: []int64{1},
		ExcludedTerms: []int64{1, 6},
		Taxonomy:      "category",
	}, r)

	assert.Equal(t, domain.Next, seen.Direction)
	assert.True(t, seen.InSameTerm)
	assert.Equal(t, []int64{6}, seen.ExcludedTerms)
}
