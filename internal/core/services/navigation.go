package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/postnav/internal/core/adjacency"
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
	"github.com/custodia-labs/postnav/internal/hooks"
	"github.com/custodia-labs/postnav/internal/logger"
)

// Ensure NavigationService implements the interface.
var _ driving.NavigationService = (*NavigationService)(nil)

// cachedResult is the cache payload. Found=false records that the lookup
// ran and matched nothing, which is distinct from a cache miss.
type cachedResult struct {
	Found bool         `json:"found"`
	Post  *domain.Post `json:"post,omitempty"`
}

// NavigationService resolves adjacent and boundary posts and renders links.
type NavigationService struct {
	content     driven.ContentStore
	terms       driven.TermStore
	cache       driven.ResultCache
	hooks       *hooks.Registry
	translator  driven.Translator
	permalinker driven.Permalinker
	settings    domain.Settings
}

// NewNavigationService creates a new navigation service.
// The cache and registry parameters are optional (can be nil).
func NewNavigationService(
	content driven.ContentStore,
	terms driven.TermStore,
	cache driven.ResultCache,
	registry *hooks.Registry,
) *NavigationService {
	return &NavigationService{
		content:     content,
		terms:       terms,
		cache:       cache,
		hooks:       registry,
		translator:  identityTranslator{},
		permalinker: queryPermalinker{},
		settings:    domain.DefaultSettings(),
	}
}

// SetTranslator sets the translator for default link labels.
func (s *NavigationService) SetTranslator(t driven.Translator) {
	if t != nil {
		s.translator = t
	}
}

// SetPermalinker sets the permalink builder used in links.
func (s *NavigationService) SetPermalinker(p driven.Permalinker) {
	if p != nil {
		s.permalinker = p
	}
}

// SetSettings sets the default taxonomy and date layout.
func (s *NavigationService) SetSettings(settings domain.Settings) {
	s.settings = settings
}

// Post loads a post by ID.
func (s *NavigationService) Post(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.content.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("loading post %d: %w", id, err)
	}
	return post, nil
}

// PreviousPost returns the nearest older published post.
func (s *NavigationService) PreviousPost(ctx context.Context, view domain.View, opts domain.Options) (*domain.Post, error) {
	return s.AdjacentPost(ctx, view, opts, domain.Previous)
}

// NextPost returns the nearest newer published post.
func (s *NavigationService) NextPost(ctx context.Context, view domain.View, opts domain.Options) (*domain.Post, error) {
	return s.AdjacentPost(ctx, view, opts, domain.Next)
}

// AdjacentPost returns the previous or next post.
func (s *NavigationService) AdjacentPost(
	ctx context.Context,
	view domain.View,
	opts domain.Options,
	dir domain.Direction,
) (*domain.Post, error) {
	in, err := s.input(ctx, view, opts)
	if err != nil {
		return nil, err
	}
	in.Direction = dir

	q := adjacency.Build(in, s.hooks)
	key := adjacency.AdjacentCacheKey(q)

	post, err := s.cached(ctx, key, func() (*domain.Post, error) {
		return s.content.FindAdjacent(ctx, q)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding %s post: %w", dir, err)
	}
	return post, nil
}

// BoundaryPost returns the first or last post.
func (s *NavigationService) BoundaryPost(
	ctx context.Context,
	view domain.View,
	opts domain.Options,
	b domain.Boundary,
) (*domain.Post, error) {
	if view.Post == nil {
		return nil, domain.ErrNoCurrentPost
	}
	if !view.Single || view.Post.IsAttachment() {
		return nil, domain.ErrNotFound
	}

	in, err := s.input(ctx, view, opts)
	if err != nil {
		return nil, err
	}

	q := adjacency.BuildBoundary(in, b)
	key := adjacency.BoundaryCacheKey(q)

	post, err := s.cached(ctx, key, func() (*domain.Post, error) {
		posts, err := s.content.ListBoundary(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(posts) == 0 {
			return nil, domain.ErrNotFound
		}
		return &posts[0], nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding %s post: %w", b, err)
	}
	return post, nil
}

// input resolves the term sets shared by adjacent and boundary lookups.
func (s *NavigationService) input(ctx context.Context, view domain.View, opts domain.Options) (adjacency.Input, error) {
	if view.Post == nil {
		return adjacency.Input{}, domain.ErrNoCurrentPost
	}

	in := adjacency.Input{
		Current:       view.Post,
		InSameTerm:    opts.InSameTerm,
		ExcludedTerms: adjacency.NormalizeExcluded(opts.ExcludeTerms, opts.ExcludeList),
		Taxonomy:      opts.TaxonomyOrDefault(s.settings.Taxonomy),
	}

	if opts.InSameTerm {
		ids, err := s.terms.ObjectTermIDs(ctx, view.Post.ID, in.Taxonomy)
		if err != nil {
			return adjacency.Input{}, fmt.Errorf("resolving %s terms of post %d: %w", in.Taxonomy, view.Post.ID, err)
		}
		if len(ids) == 0 {
			logger.Debug("post %d has no %s terms, same-term lookup is empty", view.Post.ID, in.Taxonomy)
			return adjacency.Input{}, domain.ErrNotFound
		}
		in.IncludedTerms = ids
	}

	return in, nil
}

// cached serves key from the result cache, falling back to fetch.
// Cache failures are logged and never fail the lookup.
func (s *NavigationService) cached(
	ctx context.Context,
	key string,
	fetch func() (*domain.Post, error),
) (*domain.Post, error) {
	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, adjacency.CacheGroup, key); err != nil {
			logger.Warn("cache read failed for %s: %v", key, err)
		} else if ok {
			var res cachedResult
			if err := json.Unmarshal(data, &res); err != nil {
				logger.Warn("discarding unreadable cache entry %s: %v", key, err)
			} else {
				logger.Debug("cache hit %s", key)
				if !res.Found || res.Post == nil {
					return nil, domain.ErrNotFound
				}
				return res.Post, nil
			}
		}
	}

	logger.Debug("cache miss %s", key)
	post, err := fetch()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.store(ctx, key, cachedResult{Found: false})
		return nil, domain.ErrNotFound
	case err != nil:
		return nil, err
	}

	s.store(ctx, key, cachedResult{Found: true, Post: post})
	return post, nil
}

func (s *NavigationService) store(ctx context.Context, key string, res cachedResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		logger.Warn("encoding cache entry %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, adjacency.CacheGroup, key, data); err != nil {
		logger.Warn("cache write failed for %s: %v", key, err)
	}
}

// identityTranslator returns messages unchanged.
type identityTranslator struct{}

func (identityTranslator) Translate(message string) string { return message }

// queryPermalinker renders the plain "/?p=<id>" form.
type queryPermalinker struct{}

func (queryPermalinker) Permalink(p *domain.Post) string {
	return fmt.Sprintf("/?p=%d", p.ID)
}
