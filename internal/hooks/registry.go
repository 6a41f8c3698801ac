package hooks

import (
	"sync"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

// QueryContext is passed to join, where and sort filters.
type QueryContext struct {
	Direction     domain.Direction
	InSameTerm    bool
	ExcludedTerms []int64
}

// LinkContext is passed to relational link filters.
type LinkContext struct {
	Kind domain.LinkKind
	Post *domain.Post
}

// AnchorContext is passed to anchor link filters.
// Link is the rendered <a> element before it was placed into the format.
type AnchorContext struct {
	Direction domain.Direction
	Link      string
	Post      *domain.Post
}

// TitleContext is passed to title filters.
type TitleContext struct {
	PostID int64
}

// Registry maps each navigation event to its filter chain.
// The zero value is not usable; use NewRegistry. A nil *Registry
// applies no filters.
type Registry struct {
	mu         sync.RWMutex
	join       map[domain.Direction]*Chain[domain.Clause, QueryContext]
	where      map[domain.Direction]*Chain[domain.Clause, QueryContext]
	sort       map[domain.Direction]*Chain[string, QueryContext]
	relLink    map[domain.LinkKind]*Chain[string, LinkContext]
	anchorLink map[domain.Direction]*Chain[string, AnchorContext]
	title      *Chain[string, TitleContext]
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{
		join:       make(map[domain.Direction]*Chain[domain.Clause, QueryContext]),
		where:      make(map[domain.Direction]*Chain[domain.Clause, QueryContext]),
		sort:       make(map[domain.Direction]*Chain[string, QueryContext]),
		relLink:    make(map[domain.LinkKind]*Chain[string, LinkContext]),
		anchorLink: make(map[domain.Direction]*Chain[string, AnchorContext]),
		title:      &Chain[string, TitleContext]{},
	}
}

// chainFor returns the chain for key, creating it if needed (caller must hold lock).
func chainFor[K comparable, V, C any](m map[K]*Chain[V, C], key K) *Chain[V, C] {
	c, ok := m[key]
	if !ok {
		c = &Chain[V, C]{}
		m[key] = c
	}
	return c
}

// OnJoin registers a filter for the join clause of dir lookups.
func (r *Registry) OnJoin(dir domain.Direction, f Filter[domain.Clause, QueryContext]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chainFor(r.join, dir).Add(f)
}

// OnWhere registers a filter for the where clause of dir lookups.
func (r *Registry) OnWhere(dir domain.Direction, f Filter[domain.Clause, QueryContext]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chainFor(r.where, dir).Add(f)
}

// OnSort registers a filter for the sort clause of dir lookups.
func (r *Registry) OnSort(dir domain.Direction, f Filter[string, QueryContext]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chainFor(r.sort, dir).Add(f)
}

// OnRelLink registers a filter for rendered <link> elements of a kind.
func (r *Registry) OnRelLink(kind domain.LinkKind, f Filter[string, LinkContext]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chainFor(r.relLink, kind).Add(f)
}

// OnAnchorLink registers a filter for rendered anchor links of dir.
func (r *Registry) OnAnchorLink(dir domain.Direction, f Filter[string, AnchorContext]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chainFor(r.anchorLink, dir).Add(f)
}

// OnTitle registers a filter for link titles.
func (r *Registry) OnTitle(f Filter[string, TitleContext]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.title.Add(f)
}

// ApplyJoin runs the join filters for the query's direction.
func (r *Registry) ApplyJoin(c domain.Clause, qc QueryContext) domain.Clause {
	if r == nil {
		return c
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.join[qc.Direction].Apply(c, qc)
}

// ApplyWhere runs the where filters for the query's direction.
func (r *Registry) ApplyWhere(c domain.Clause, qc QueryContext) domain.Clause {
	if r == nil {
		return c
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.where[qc.Direction].Apply(c, qc)
}

// ApplySort runs the sort filters for the query's direction.
func (r *Registry) ApplySort(s string, qc QueryContext) string {
	if r == nil {
		return s
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sort[qc.Direction].Apply(s, qc)
}

// ApplyRelLink runs the relational link filters for the link kind.
func (r *Registry) ApplyRelLink(link string, lc LinkContext) string {
	if r == nil {
		return link
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.relLink[lc.Kind].Apply(link, lc)
}

// ApplyAnchorLink runs the anchor link filters for the direction.
func (r *Registry) ApplyAnchorLink(output string, ac AnchorContext) string {
	if r == nil {
		return output
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.anchorLink[ac.Direction].Apply(output, ac)
}

// ApplyTitle runs the title filters.
func (r *Registry) ApplyTitle(title string, tc TitleContext) string {
	if r == nil {
		return title
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.title.Apply(title, tc)
}
