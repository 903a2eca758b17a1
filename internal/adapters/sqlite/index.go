// Package sqlite keeps a queryable mirror of the JSON project index,
// so the MCP server can answer searches without reparsing the file.
package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"projdex/internal/domain"
	"projdex/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.ProjectIndex using SQLite. The database is
// keyed by the index file path, so different indexes never collide.
type Index struct {
	db        *sql.DB
	indexPath string
	dbPath    string
}

var _ ports.ProjectIndex = (*Index)(nil)

// NewIndex creates an unopened mirror.
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the mirror for the given JSON index path.
func (idx *Index) Open(indexPath string) error {
	abs, err := filepath.Abs(indexPath)
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}
	idx.indexPath = abs
	idx.dbPath = databasePath(abs)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("creating mirror directory: %w", err)
	}

	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening mirror database: %w", err)
	}
	idx.db = db

	// Pragmas + schema in one batch.
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS projects (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS tags (
			project_path TEXT NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (project_path, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_projects_name ON projects(name);
		CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category);
		CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("setting up mirror schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsRebuild reports whether the mirror does not reflect the given
// projects, either because the schema changed or the content differs.
func (idx *Index) NeedsRebuild(projects []domain.Project) bool {
	var version, contentHash string
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'content_hash'`).Scan(&contentHash)
	return version != schemaVersion || contentHash != hashProjects(projects)
}

// Rebuild replaces the mirror contents in a single transaction.
func (idx *Index) Rebuild(projects []domain.Project) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM projects`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM tags`); err != nil {
		return err
	}

	for _, p := range projects {
		if _, err := tx.Exec(
			`INSERT INTO projects (path, name, category, status) VALUES (?, ?, ?, ?)`,
			p.Path, p.Name, p.Category, string(p.Status),
		); err != nil {
			return fmt.Errorf("inserting project %s: %w", p.Name, err)
		}
		for i, tag := range p.Tags {
			if _, err := tx.Exec(
				`INSERT INTO tags (project_path, position, tag) VALUES (?, ?, ?)`,
				p.Path, i, tag,
			); err != nil {
				return fmt.Errorf("inserting tag %s for %s: %w", tag, p.Name, err)
			}
		}
	}

	meta := map[string]string{
		"schema_version": schemaVersion,
		"content_hash":   hashProjects(projects),
	}
	for key, value := range meta {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value,
		); err != nil {
			return fmt.Errorf("updating mirror metadata: %w", err)
		}
	}

	return tx.Commit()
}

// Search returns projects whose name, category, path, or any tag
// contains the query, ordered by (category, name).
func (idx *Index) Search(query string) ([]domain.Project, error) {
	pattern := "%" + query + "%"
	rows, err := idx.db.Query(`
		SELECT path, name, category, status FROM projects
		WHERE name LIKE ? OR category LIKE ? OR path LIKE ?
		   OR path IN (SELECT project_path FROM tags WHERE tag LIKE ?)
		ORDER BY category, name
	`, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return idx.scanProjects(rows)
}

// Get returns the project with the given name, or nil when absent.
func (idx *Index) Get(name string) (*domain.Project, error) {
	row := idx.db.QueryRow(`
		SELECT path, name, category, status FROM projects WHERE name = ?
	`, name)

	var p domain.Project
	var status string
	if err := row.Scan(&p.Path, &p.Name, &p.Category, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.Status = domain.Status(status)

	tags, err := idx.projectTags(p.Path)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return &p, nil
}

// Categories returns per-category project counts, category ascending.
func (idx *Index) Categories() ([]ports.CategoryCount, error) {
	rows, err := idx.db.Query(`
		SELECT category, COUNT(*) FROM projects GROUP BY category ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ports.CategoryCount
	for rows.Next() {
		var c ports.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// StatusCounts returns per-status project counts.
func (idx *Index) StatusCounts() (map[domain.Status]int, error) {
	rows, err := idx.db.Query(`SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[domain.Status(status)] = count
	}
	return counts, rows.Err()
}

// TagCounts returns the most frequent tags, count descending, ties
// broken by tag.
func (idx *Index) TagCounts(limit int) ([]domain.TagCount, error) {
	q := `SELECT tag, COUNT(*) AS n FROM tags GROUP BY tag ORDER BY n DESC, tag`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := idx.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.TagCount
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

func (idx *Index) scanProjects(rows *sql.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var status string
		if err := rows.Scan(&p.Path, &p.Name, &p.Category, &status); err != nil {
			return nil, err
		}
		p.Status = domain.Status(status)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range projects {
		tags, err := idx.projectTags(projects[i].Path)
		if err != nil {
			return nil, err
		}
		projects[i].Tags = tags
	}
	return projects, nil
}

func (idx *Index) projectTags(path string) ([]string, error) {
	rows, err := idx.db.Query(`
		SELECT tag FROM tags WHERE project_path = ? ORDER BY position
	`, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// databasePath derives the mirror location under the XDG data dir.
func databasePath(indexPath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	h := sha256.Sum256([]byte(indexPath))
	return filepath.Join(dataHome, "projdex", hex.EncodeToString(h[:8])+".db")
}

// hashProjects fingerprints the index content for staleness checks.
func hashProjects(projects []domain.Project) string {
	data, err := json.Marshal(projects)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
