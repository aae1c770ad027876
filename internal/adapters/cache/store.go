package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
    cache_key  TEXT PRIMARY KEY,
    payload    BLOB NOT NULL,
    stored_at  INTEGER NOT NULL,
    expires_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS response_tags (
    cache_key TEXT NOT NULL REFERENCES responses(cache_key) ON DELETE CASCADE,
    tag       TEXT NOT NULL,
    PRIMARY KEY (cache_key, tag)
);
CREATE INDEX IF NOT EXISTS idx_response_tags_tag ON response_tags(tag);
`

// Store keeps API responses in a SQLite file with a per-entry TTL
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (creating if needed) the response cache at path
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer keeps the pragmas above on the only connection
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the underlying SQLite connection
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns a live entry. Expired entries are removed and reported as missing.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	var expiresAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM responses WHERE cache_key = ?`, key,
	).Scan(&payload, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}

	if s.now().UnixMilli() >= expiresAt {
		if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM responses WHERE cache_key = ?`, key); err != nil {
			return nil, false, fmt.Errorf("evict cache entry: %w", err)
		}
		return nil, false, nil
	}
	return payload, true, nil
}

// Set upserts an entry and replaces its tags
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	if ttl <= 0 {
		return nil
	}
	now := s.now()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO responses (cache_key, payload, stored_at, expires_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    payload = excluded.payload,
		    stored_at = excluded.stored_at,
		    expires_at = excluded.expires_at`,
		key, value, now.UnixMilli(), now.Add(ttl).UnixMilli(),
	); err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM response_tags WHERE cache_key = ?`, key); err != nil {
		return fmt.Errorf("reset cache tags: %w", err)
	}
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO response_tags (cache_key, tag) VALUES (?, ?)`, key, tag,
		); err != nil {
			return fmt.Errorf("tag cache entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache write: %w", err)
	}
	return nil
}

// InvalidateTag removes every entry carrying tag
func (s *Store) InvalidateTag(ctx context.Context, tag string) error {
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM responses WHERE cache_key IN (SELECT cache_key FROM response_tags WHERE tag = ?)`, tag,
	); err != nil {
		return fmt.Errorf("invalidate cache tag %s: %w", tag, err)
	}
	return nil
}

// Clear removes every entry and returns how many there were
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM responses`)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return int(n), nil
}

var _ usecase.ResponseCache = (*Store)(nil)

// Disabled is a ResponseCache that stores nothing
type Disabled struct{}

func (Disabled) Get(context.Context, string) ([]byte, bool, error)                   { return nil, false, nil }
func (Disabled) Set(context.Context, string, []byte, time.Duration, ...string) error { return nil }
func (Disabled) InvalidateTag(context.Context, string) error                         { return nil }
func (Disabled) Clear(context.Context) (int, error)                                  { return 0, nil }

var _ usecase.ResponseCache = Disabled{}

// FileName is the response cache file inside the data directory
const FileName = "cache.db"

// Provide opens the response cache for cfg, or a disabled cache when caching is off.
// The returned cleanup closes the database.
func Provide(cfg *config.RuntimeConfig) (usecase.ResponseCache, func(), error) {
	if !cfg.CacheEnabled {
		return Disabled{}, func() {}, nil
	}
	store, err := Open(filepath.Join(cfg.DataDir, FileName))
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
