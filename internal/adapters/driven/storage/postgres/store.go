// Package postgres provides a PostgreSQL content store for post navigation
// built on pgx. It runs the same rendered statements as the SQLite store,
// rebinding "?" placeholders to the "$n" form.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/custodia-labs/postnav/internal/core/adjacency"
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

//go:embed schema.sql
var schema string

// DB is the subset of *pgxpool.Pool used by the store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store is a PostgreSQL content store.
type Store struct {
	db DB
}

var (
	_ driven.ContentStore  = (*Store)(nil)
	_ driven.TermStore     = (*Store)(nil)
	_ driven.ContentWriter = (*Store)(nil)
)

// NewStore connects to dsn and ensures the schema exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres dsn is empty", domain.ErrInvalidInput)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	s := NewStoreWithDB(pool)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewStoreWithDB wraps an existing pool or mock.
func NewStoreWithDB(db DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the content tables if they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

// GetPost retrieves a post by ID.
func (s *Store) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	row := s.db.QueryRow(ctx, "SELECT "+domain.PostColumns+" FROM posts AS p WHERE p.id = $1", id)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	return p, nil
}

// FindAdjacent runs the rendered adjacency statement.
func (s *Store) FindAdjacent(ctx context.Context, q *domain.AdjacencyQuery) (*domain.Post, error) {
	row := s.db.QueryRow(ctx, Rebind(q.SQL()), q.Args()...)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding adjacent post: %w", err)
	}
	return p, nil
}

// ListBoundary lists posts ordered by publish date.
func (s *Store) ListBoundary(ctx context.Context, q domain.BoundaryQuery) ([]domain.Post, error) {
	text, args := adjacency.BoundarySQL(q)

	rows, err := s.db.Query(ctx, Rebind(text), args...)
	if err != nil {
		return nil, fmt.Errorf("listing boundary posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posts: %w", err)
	}
	return posts, nil
}

// ObjectTermIDs returns the IDs of a post's terms in a taxonomy.
func (s *Store) ObjectTermIDs(ctx context.Context, postID int64, taxonomy string) ([]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT tt.term_id FROM term_relationships AS tr
		INNER JOIN term_taxonomy AS tt ON tr.term_taxonomy_id = tt.term_taxonomy_id
		WHERE tr.object_id = $1 AND tt.taxonomy = $2
		ORDER BY tt.term_id`, postID, taxonomy)
	if err != nil {
		return nil, fmt.Errorf("querying post terms: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning term id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating term ids: %w", err)
	}
	return ids, nil
}

// SavePost stores or updates a post.
func (s *Store) SavePost(ctx context.Context, p domain.Post) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO posts (id, post_date, post_type, post_status, post_title, post_name, post_parent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			post_date = EXCLUDED.post_date,
			post_type = EXCLUDED.post_type,
			post_status = EXCLUDED.post_status,
			post_title = EXCLUDED.post_title,
			post_name = EXCLUDED.post_name,
			post_parent = EXCLUDED.post_parent`,
		p.ID, p.Date.UTC(), p.Type, p.Status, p.Title, p.Name, p.ParentID)
	if err != nil {
		return fmt.Errorf("saving post: %w", err)
	}
	return nil
}

// SaveTerm stores or updates a term and its taxonomy row.
func (s *Store) SaveTerm(ctx context.Context, t domain.Term) error {
	if _, err := s.db.Exec(ctx, `
		INSERT INTO terms (term_id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (term_id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug`,
		t.ID, t.Name, t.Slug); err != nil {
		return fmt.Errorf("saving term: %w", err)
	}
	if _, err := s.db.Exec(ctx, `
		INSERT INTO term_taxonomy (term_id, taxonomy) VALUES ($1, $2)
		ON CONFLICT (term_id, taxonomy) DO NOTHING`,
		t.ID, t.Taxonomy); err != nil {
		return fmt.Errorf("saving term taxonomy: %w", err)
	}
	return nil
}

// AssignTerms attaches terms to a post.
func (s *Store) AssignTerms(ctx context.Context, postID int64, termIDs ...int64) error {
	for _, id := range termIDs {
		if _, err := s.db.Exec(ctx, `
			INSERT INTO term_relationships (object_id, term_taxonomy_id)
			SELECT $1, term_taxonomy_id FROM term_taxonomy WHERE term_id = $2
			ON CONFLICT DO NOTHING`, postID, id); err != nil {
			return fmt.Errorf("assigning term %d: %w", id, err)
		}
	}
	return nil
}

// Rebind rewrites "?" placeholders as "$1", "$2", ... skipping quoted literals.
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for _, r := range query {
		switch {
		case r == '\'':
			quoted = !quoted
			b.WriteRune(r)
		case r == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Date, &p.Type, &p.Status, &p.Title, &p.Name, &p.ParentID); err != nil {
		return nil, err
	}
	p.Date = p.Date.UTC()
	return &p, nil
}
