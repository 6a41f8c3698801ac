package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/postnav/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/postnav/internal/core/adjacency"
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

// DateLayout is the text layout of post_date.
const DateLayout = "2006-01-02 15:04:05"

// Store is a SQLite-based storage that provides access to the content
// interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.postnav/data/posts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".postnav", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "posts.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ContentStore returns a ContentStore interface backed by this store.
func (s *Store) ContentStore() driven.ContentStore {
	return &contentStore{store: s}
}

// TermStore returns a TermStore interface backed by this store.
func (s *Store) TermStore() driven.TermStore {
	return &contentStore{store: s}
}

// ContentWriter returns a ContentWriter interface backed by this store.
func (s *Store) ContentWriter() driven.ContentWriter {
	return &contentStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Content Store ====================

// contentStore implements the content ports over the shared connection.
type contentStore struct {
	store *Store
}

var (
	_ driven.ContentStore  = (*contentStore)(nil)
	_ driven.TermStore     = (*contentStore)(nil)
	_ driven.ContentWriter = (*contentStore)(nil)
)

// GetPost retrieves a post by ID.
func (s *contentStore) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+domain.PostColumns+" FROM posts AS p WHERE p.id = ?", id)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	return p, nil
}

// FindAdjacent runs the rendered adjacency statement.
func (s *contentStore) FindAdjacent(ctx context.Context, q *domain.AdjacencyQuery) (*domain.Post, error) {
	row := s.store.db.QueryRowContext(ctx, q.SQL(), bindArgs(q.Args())...)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding adjacent post: %w", err)
	}
	return p, nil
}

// ListBoundary lists posts ordered by publish date.
func (s *contentStore) ListBoundary(ctx context.Context, q domain.BoundaryQuery) ([]domain.Post, error) {
	text, args := adjacency.BoundarySQL(q)

	rows, err := s.store.db.QueryContext(ctx, text, bindArgs(args)...)
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
func (s *contentStore) ObjectTermIDs(ctx context.Context, postID int64, taxonomy string) ([]int64, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT tt.term_id FROM term_relationships AS tr
		INNER JOIN term_taxonomy AS tt ON tr.term_taxonomy_id = tt.term_taxonomy_id
		WHERE tr.object_id = ? AND tt.taxonomy = ?
		ORDER BY tt.term_id
	`, postID, taxonomy)
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
func (s *contentStore) SavePost(ctx context.Context, p domain.Post) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO posts (id, post_date, post_type, post_status, post_title, post_name, post_parent)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			post_date = excluded.post_date,
			post_type = excluded.post_type,
			post_status = excluded.post_status,
			post_title = excluded.post_title,
			post_name = excluded.post_name,
			post_parent = excluded.post_parent
	`, p.ID, formatDate(p.Date), p.Type, p.Status, p.Title, p.Name, p.ParentID)
	if err != nil {
		return fmt.Errorf("saving post: %w", err)
	}
	return nil
}

// SaveTerm stores or updates a term and its taxonomy row.
func (s *contentStore) SaveTerm(ctx context.Context, t domain.Term) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO terms (term_id, name, slug) VALUES (?, ?, ?)
		ON CONFLICT(term_id) DO UPDATE SET name = excluded.name, slug = excluded.slug
	`, t.ID, t.Name, t.Slug); err != nil {
		return fmt.Errorf("saving term: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO term_taxonomy (term_id, taxonomy) VALUES (?, ?)",
		t.ID, t.Taxonomy); err != nil {
		return fmt.Errorf("saving term taxonomy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing term: %w", err)
	}
	return nil
}

// AssignTerms attaches terms to a post.
func (s *contentStore) AssignTerms(ctx context.Context, postID int64, termIDs ...int64) error {
	for _, id := range termIDs {
		if _, err := s.store.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO term_relationships (object_id, term_taxonomy_id)
			SELECT ?, term_taxonomy_id FROM term_taxonomy WHERE term_id = ?
		`, postID, id); err != nil {
			return fmt.Errorf("assigning term %d: %w", id, err)
		}
	}
	return nil
}

// ==================== Helpers ====================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	var date string
	if err := row.Scan(&p.ID, &date, &p.Type, &p.Status, &p.Title, &p.Name, &p.ParentID); err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing post_date %q: %w", date, err)
	}
	p.Date = t
	return &p, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// bindArgs renders time arguments in the stored date layout.
func bindArgs(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if t, ok := arg.(time.Time); ok {
			out[i] = formatDate(t)
			continue
		}
		out[i] = arg
	}
	return out
}
