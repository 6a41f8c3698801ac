package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

// Ensure ContentStore implements the interfaces.
var (
	_ driven.ContentStore  = (*ContentStore)(nil)
	_ driven.TermStore     = (*ContentStore)(nil)
	_ driven.ContentWriter = (*ContentStore)(nil)
)

// ContentStore is an in-memory implementation of driven.ContentStore
// and driven.TermStore.
//
// It evaluates the structured fields of a query rather than its SQL text,
// so join, where and sort hooks have no effect on it.
type ContentStore struct {
	mu            sync.RWMutex
	posts         map[int64]domain.Post
	terms         map[int64]domain.Term
	relationships map[int64][]int64
}

// NewContentStore creates a new in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		posts:         make(map[int64]domain.Post),
		terms:         make(map[int64]domain.Term),
		relationships: make(map[int64][]int64),
	}
}

// SavePost stores or updates a post.
func (s *ContentStore) SavePost(_ context.Context, p domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Date = p.Date.UTC()
	s.posts[p.ID] = p
	return nil
}

// SaveTerm stores or updates a term.
func (s *ContentStore) SaveTerm(_ context.Context, t domain.Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[t.ID] = t
	return nil
}

// AssignTerms attaches terms to a post.
func (s *ContentStore) AssignTerms(_ context.Context, postID int64, termIDs ...int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range termIDs {
		if !slices.Contains(s.relationships[postID], id) {
			s.relationships[postID] = append(s.relationships[postID], id)
		}
	}
	return nil
}

// GetPost retrieves a post by ID.
func (s *ContentStore) GetPost(_ context.Context, id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// ObjectTermIDs returns the IDs of a post's terms in a taxonomy.
func (s *ContentStore) ObjectTermIDs(_ context.Context, postID int64, taxonomy string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []int64
	for _, id := range s.relationships[postID] {
		if t, ok := s.terms[id]; ok && t.Taxonomy == taxonomy {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// FindAdjacent returns the nearest post before or after the reference date.
func (s *ContentStore) FindAdjacent(_ context.Context, q *domain.AdjacencyQuery) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	joined := q.InSameTerm || len(q.ExcludedTerms) > 0

	var best *domain.Post
	for id := range s.posts {
		p := s.posts[id]
		if p.Type != q.PostType || p.Status != q.Status {
			continue
		}
		if q.Direction == domain.Next && !p.Date.After(q.Reference) {
			continue
		}
		if q.Direction == domain.Previous && !p.Date.Before(q.Reference) {
			continue
		}
		if joined && !s.hasMatchingTerm(p.ID, q.Taxonomy, q.InSameTerm, q.IncludedTerms, q.ExcludedTerms) {
			continue
		}
		if best == nil || closer(q.Direction, &p, best) {
			candidate := p
			best = &candidate
		}
	}

	if best == nil {
		return nil, domain.ErrNotFound
	}
	return best, nil
}

// ListBoundary lists posts ordered by publish date.
func (s *ContentStore) ListBoundary(_ context.Context, q domain.BoundaryQuery) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Post
	for id := range s.posts {
		p := s.posts[id]
		if p.Type != q.PostType || p.Status != q.Status {
			continue
		}
		if len(q.IncludedTerms) > 0 && !s.inAnyTerm(p.ID, q.Taxonomy, q.IncludedTerms) {
			continue
		}
		if len(q.ExcludedTerms) > 0 && s.inAnyTerm(p.ID, q.Taxonomy, q.ExcludedTerms) {
			continue
		}
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if q.Order() == domain.Descending {
			return result[i].Date.After(result[j].Date) ||
				(result[i].Date.Equal(result[j].Date) && result[i].ID > result[j].ID)
		}
		return result[i].Date.Before(result[j].Date) ||
			(result[i].Date.Equal(result[j].Date) && result[i].ID < result[j].ID)
	})

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

// hasMatchingTerm mirrors the SQL join: some term row of the post must be
// in the taxonomy, in the included set (when restricting) and outside the
// excluded set (caller must hold lock).
func (s *ContentStore) hasMatchingTerm(postID int64, taxonomy string, restrict bool, included, excluded []int64) bool {
	for _, id := range s.relationships[postID] {
		t, ok := s.terms[id]
		if !ok || t.Taxonomy != taxonomy {
			continue
		}
		if restrict && !slices.Contains(included, id) {
			continue
		}
		if slices.Contains(excluded, id) {
			continue
		}
		return true
	}
	return false
}

// inAnyTerm reports whether the post has any of ids in taxonomy (caller must hold lock).
func (s *ContentStore) inAnyTerm(postID int64, taxonomy string, ids []int64) bool {
	for _, id := range s.relationships[postID] {
		if t, ok := s.terms[id]; ok && t.Taxonomy == taxonomy && slices.Contains(ids, id) {
			return true
		}
	}
	return false
}

// closer reports whether a is nearer to the reference than b in dir.
// Ties on date break by ID so results are stable.
func closer(dir domain.Direction, a, b *domain.Post) bool {
	if a.Date.Equal(b.Date) {
		if dir == domain.Next {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	}
	if dir == domain.Next {
		return a.Date.Before(b.Date)
	}
	return a.Date.After(b.Date)
}
