// Package sqlite implements the PageStore port on a local SQLite
// database. The pages table is fully owned private state of the core:
// external collaborators read it only through search, write it only
// through ingest.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/policyq/policyq-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
)

// Metadata keys recorded by ReplaceAll.
const (
	metaLastIndexed = "last_indexed"
	metaLastRunID   = "last_run_id"
)

// Ensure Store implements the interface.
var _ driven.PageStore = (*Store)(nil)

// Store is a SQLite-backed page store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the page store at indexPath.
// If indexPath is empty, defaults to ~/.policyq/index.db.
func NewStore(indexPath string) (*Store, error) {
	if indexPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %v", domain.ErrStoreUnavailable, err)
		}
		indexPath = filepath.Join(home, ".policyq", "index.db")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(indexPath), 0700); err != nil {
		return nil, fmt.Errorf("%w: creating index directory: %v", domain.ErrStoreUnavailable, err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", indexPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStoreUnavailable, err)
	}

	s := &Store{
		db:   db,
		path: indexPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %v", domain.ErrStoreUnavailable, err)
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

// ReplaceAll rebuilds the pages table from the given records inside a
// single transaction. The delete, the inserts and the metadata update
// commit as one atomic unit: on any failure the previous contents
// survive intact, a reader never observes a half-replaced store.
func (s *Store) ReplaceAll(ctx context.Context, runID string, pages []domain.PageRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return fmt.Errorf("clearing pages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pages (document_name, document_path, page_number, text, section, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, page := range pages {
		_, err := stmt.ExecContext(ctx,
			page.DocumentName,
			page.DocumentPath,
			page.PageNumber,
			page.Text,
			nullable(page.Section),
			page.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting page %s/%d: %w", page.DocumentName, page.PageNumber, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?), (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
		metaLastIndexed, time.Now().UTC().Format(time.RFC3339),
		metaLastRunID, runID,
	)
	if err != nil {
		return fmt.Errorf("recording ingest run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing replace: %w", err)
	}
	return nil
}

// AllPages returns every stored page ordered by (document_name,
// page_number) so that full scans are reproducible.
func (s *Store) AllPages(ctx context.Context) ([]domain.PageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_name, document_path, page_number, text, section, created_at
		FROM pages
		ORDER BY document_name, page_number
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying pages: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var pages []domain.PageRecord
	for rows.Next() {
		var (
			page      domain.PageRecord
			section   sql.NullString
			createdAt string
		)
		if err := rows.Scan(
			&page.DocumentName,
			&page.DocumentPath,
			&page.PageNumber,
			&page.Text,
			&section,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		page.Section = section.String
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			page.CreatedAt = ts
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading pages: %v", domain.ErrStoreUnavailable, err)
	}
	return pages, nil
}

// Stats summarises the current store contents.
func (s *Store) Stats(ctx context.Context) (domain.IndexStats, error) {
	var stats domain.IndexStats

	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(DISTINCT document_name),
		       COALESCE(CAST(AVG(LENGTH(text)) AS INTEGER), 0)
		FROM pages
	`)
	if err := row.Scan(&stats.TotalPages, &stats.TotalDocuments, &stats.AvgTextLength); err != nil {
		return stats, fmt.Errorf("%w: reading stats: %v", domain.ErrStoreUnavailable, err)
	}

	stats.LastIndexed = s.metaValue(ctx, metaLastIndexed)
	stats.LastRunID = s.metaValue(ctx, metaLastRunID)
	return stats, nil
}

// metaValue returns a metadata value, or "" when absent.
func (s *Store) metaValue(ctx context.Context, key string) string {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_create_pages.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
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
