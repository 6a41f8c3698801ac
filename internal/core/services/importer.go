package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
	"github.com/custodia-labs/postnav/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// importDump is the JSON layout accepted by Import.
type importDump struct {
	Terms []domain.Term  `json:"terms"`
	Posts []importedPost `json:"posts"`
}

type importedPost struct {
	domain.Post
	Terms []int64 `json:"terms,omitempty"`
}

// ImportService writes content dumps through a ContentWriter.
type ImportService struct {
	writer driven.ContentWriter
}

// NewImportService creates a new import service.
func NewImportService(writer driven.ContentWriter) *ImportService {
	return &ImportService{writer: writer}
}

// Import reads a dump and writes it. Missing post types and statuses
// default to published posts; missing term taxonomies to the default one.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (*driving.ImportStats, error) {
	var dump importDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("%w: decoding dump: %v", domain.ErrInvalidInput, err)
	}

	stats := &driving.ImportStats{}

	for _, t := range dump.Terms {
		if t.ID <= 0 {
			return stats, fmt.Errorf("%w: term id must be positive, got %d", domain.ErrInvalidInput, t.ID)
		}
		if t.Taxonomy == "" {
			t.Taxonomy = domain.DefaultTaxonomy
		}
		if err := s.writer.SaveTerm(ctx, t); err != nil {
			return stats, fmt.Errorf("saving term %d: %w", t.ID, err)
		}
		stats.Terms++
	}

	for _, p := range dump.Posts {
		post := p.Post
		if post.ID <= 0 {
			return stats, fmt.Errorf("%w: post id must be positive, got %d", domain.ErrInvalidInput, post.ID)
		}
		if post.Type == "" {
			post.Type = domain.TypePost
		}
		if post.Status == "" {
			post.Status = domain.StatusPublish
		}
		if err := s.writer.SavePost(ctx, post); err != nil {
			return stats, fmt.Errorf("saving post %d: %w", post.ID, err)
		}
		stats.Posts++

		if len(p.Terms) == 0 {
			continue
		}
		if err := s.writer.AssignTerms(ctx, post.ID, p.Terms...); err != nil {
			return stats, fmt.Errorf("assigning terms to post %d: %w", post.ID, err)
		}
		stats.Relationships += len(p.Terms)
	}

	logger.Debug("imported %d terms, %d posts, %d relationships", stats.Terms, stats.Posts, stats.Relationships)
	return stats, nil
}
