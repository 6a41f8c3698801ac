package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdjacencyQuery_SQL_WithoutJoin(t *testing.T) {
	q := &AdjacencyQuery{
		Where: Clause{SQL: "WHERE p.post_date < ?", Args: []any{"a"}},
		Sort:  "ORDER BY p.post_date DESC LIMIT 1",
	}

	assert.Equal(t,
		"SELECT "+PostColumns+" FROM posts AS p WHERE p.post_date < ? ORDER BY p.post_date DESC LIMIT 1",
		q.SQL())
}

func TestAdjacencyQuery_Args_JoinFirst(t *testing.T) {
	ref := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	q := &AdjacencyQuery{
		Join:  Clause{SQL: "INNER JOIN x", Args: []any{"category"}},
		Where: Clause{SQL: "WHERE y", Args: []any{ref, "post"}},
	}

	assert.Equal(t, []any{"category", ref, "post"}, q.Args())
}

func TestOptions_HasExclusions(t *testing.T) {
	assert.False(t, Options{}.HasExclusions())
	assert.False(t, Options{ExcludeList: "  "}.HasExclusions())
	assert.True(t, Options{ExcludeList: "3"}.HasExclusions())
	assert.True(t, Options{ExcludeTerms: []int64{3}}.HasExclusions())
}

func TestOptions_TaxonomyOrDefault(t *testing.T) {
	assert.Equal(t, "tag", Options{Taxonomy: "tag"}.TaxonomyOrDefault("series"))
	assert.Equal(t, "series", Options{}.TaxonomyOrDefault("series"))
	assert.Equal(t, DefaultTaxonomy, Options{}.TaxonomyOrDefault(""))
}
