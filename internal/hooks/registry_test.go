package hooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

func TestChain_AppliesInRegistrationOrder(t *testing.T) {
	var c Chain[string, int]
	c.Add(func(v string, _ int) string { return v + "a" })
	c.Add(func(v string, _ int) string { return v + "b" })

	assert.Equal(t, "xab", c.Apply("x", 0))
	assert.Equal(t, 2, c.Len())
}

func TestChain_NilIsIdentity(t *testing.T) {
	var c *Chain[string, int]
	assert.Equal(t, "x", c.Apply("x", 0))
	assert.Equal(t, 0, c.Len())
}

func TestChain_IgnoresNilFilter(t *testing.T) {
	var c Chain[string, int]
	c.Add(nil)
	assert.Equal(t, 0, c.Len())
}

func TestRegistry_NilRegistryIsIdentity(t *testing.T) {
	var r *Registry
	clause := domain.Clause{SQL: "WHERE 1"}

	assert.Equal(t, clause, r.ApplyJoin(clause, QueryContext{}))
	assert.Equal(t, clause, r.ApplyWhere(clause, QueryContext{}))
	assert.Equal(t, "ORDER", r.ApplySort("ORDER", QueryContext{}))
	assert.Equal(t, "<link>", r.ApplyRelLink("<link>", LinkContext{}))
	assert.Equal(t, "<a>", r.ApplyAnchorLink("<a>", AnchorContext{}))
	assert.Equal(t, "Title", r.ApplyTitle("Title", TitleContext{}))
}

func TestRegistry_FiltersAreKeyedByDirection(t *testing.T) {
	r := NewRegistry()
	r.OnSort(domain.Next, func(s string, _ QueryContext) string {
		return strings.Replace(s, "LIMIT 1", "LIMIT 1 OFFSET 0", 1)
	})

	prev := r.ApplySort("ORDER BY p.post_date DESC LIMIT 1", QueryContext{Direction: domain.Previous})
	next := r.ApplySort("ORDER BY p.post_date ASC LIMIT 1", QueryContext{Direction: domain.Next})

	assert.Equal(t, "ORDER BY p.post_date DESC LIMIT 1", prev)
	assert.Equal(t, "ORDER BY p.post_date ASC LIMIT 1 OFFSET 0", next)
}

func TestRegistry_WhereFilterSeesContext(t *testing.T) {
	r := NewRegistry()
	var seen QueryContext
	r.OnWhere(domain.Previous, func(c domain.Clause, qc QueryContext) domain.Clause {
		seen = qc
		c.SQL += " AND p.id <> ?"
		c.Args = append(c.Args, int64(9))
		return c
	})

	qc := QueryContext{Direction: domain.Previous, InSameTerm: true, ExcludedTerms: []int64{4}}
	got := r.ApplyWhere(domain.Clause{SQL: "WHERE x", Args: []any{"a"}}, qc)

	assert.Equal(t, "WHERE x AND p.id <> ?", got.SQL)
	assert.Equal(t, []any{"a", int64(9)}, got.Args)
	assert.Equal(t, qc, seen)
}

func TestRegistry_JoinFilter(t *testing.T) {
	r := NewRegistry()
	r.OnJoin(domain.Next, func(c domain.Clause, _ QueryContext) domain.Clause {
		return domain.Clause{SQL: c.SQL + " INNER JOIN extra"}
	})

	got := r.ApplyJoin(domain.Clause{SQL: "INNER JOIN t"}, QueryContext{Direction: domain.Next})
	assert.Equal(t, "INNER JOIN t INNER JOIN extra", got.SQL)
}

func TestRegistry_RelLinkKeyedByKind(t *testing.T) {
	r := NewRegistry()
	r.OnRelLink(domain.LinkStart, func(s string, lc LinkContext) string {
		return "<!-- " + string(lc.Kind) + " -->" + s
	})

	assert.Equal(t, "<!-- start --><link>", r.ApplyRelLink("<link>", LinkContext{Kind: domain.LinkStart}))
	assert.Equal(t, "<link>", r.ApplyRelLink("<link>", LinkContext{Kind: domain.LinkEnd}))
}

func TestRegistry_AnchorAndTitle(t *testing.T) {
	r := NewRegistry()
	r.OnAnchorLink(domain.Previous, func(s string, ac AnchorContext) string {
		return "[" + ac.Link + "]"
	})
	r.OnTitle(func(s string, tc TitleContext) string {
		return strings.ToUpper(s)
	})

	assert.Equal(t, "[<a>]", r.ApplyAnchorLink("ignored", AnchorContext{Direction: domain.Previous, Link: "<a>"}))
	assert.Equal(t, "HELLO", r.ApplyTitle("hello", TitleContext{PostID: 1}))
}
