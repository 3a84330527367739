// Package store persists tenant records in SQLite, one JSON document per
// tenant. Records that fail to decode are quarantined and replaced with
// defaults instead of crashing the caller.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store provides access to tenant records
type Store struct {
	db       *sqlx.DB
	defaults domain.Defaults

	mu    sync.Mutex
	locks map[int64]*sync.Mutex // per-tenant, guards read-modify-write cycles
}

type tenantRow struct {
	ID   int64  `db:"id"`
	Data string `db:"data"`
}

// New opens the database, applies pragmas and initializes the schema
func New(ctx context.Context, cfg Config, defaults domain.Defaults) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:autoposter.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("execute schema: %w", err)
	}

	return &Store{db: db, defaults: defaults, locks: make(map[int64]*sync.Mutex)}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load returns the tenant record, creating it with defaults when absent.
// A record that cannot be decoded is moved to quarantine and replaced with
// a fresh default record, never returned as an error.
func (s *Store) Load(ctx context.Context, id int64) (*domain.Tenant, error) {
	var row tenantRow
	err := s.db.GetContext(ctx, &row, "SELECT id, data FROM tenants WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		tenant := domain.NewTenant(id, s.defaults)
		if err := s.Save(ctx, tenant); err != nil {
			return nil, fmt.Errorf("persist new tenant %d: %w", id, err)
		}
		return tenant, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load tenant %d: %w", id, err)
	}

	var tenant domain.Tenant
	if err := json.Unmarshal([]byte(row.Data), &tenant); err != nil {
		lgr.Printf("[WARN] tenant %d record corrupt, quarantining: %v", id, err)
		if qErr := s.quarantine(ctx, id, row.Data, err.Error()); qErr != nil {
			return nil, fmt.Errorf("quarantine tenant %d: %w", id, qErr)
		}
		fresh := domain.NewTenant(id, s.defaults)
		if err := s.Save(ctx, fresh); err != nil {
			return nil, fmt.Errorf("reset tenant %d: %w", id, err)
		}
		return fresh, nil
	}

	tenant.ID = id // key wins over whatever the document claims
	return &tenant, nil
}

// Save upserts the tenant record, retrying on SQLite lock contention
func (s *Store) Save(ctx context.Context, tenant *domain.Tenant) error {
	data, err := json.Marshal(tenant)
	if err != nil {
		return fmt.Errorf("marshal tenant %d: %w", tenant.ID, err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO tenants (id, data, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
		`
		if _, err := s.db.ExecContext(ctx, query, tenant.ID, string(data)); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save tenant %d: %w", tenant.ID, err)}
		}
		return nil
	})
}

// Update runs a read-modify-write cycle on a tenant record under the
// per-tenant lock, so a command handler and the autopost loop cannot
// clobber each other's writes
func (s *Store) Update(ctx context.Context, id int64, fn func(*domain.Tenant) error) (*domain.Tenant, error) {
	lock := s.tenantLock(id)
	lock.Lock()
	defer lock.Unlock()

	tenant, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(tenant); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// List returns all known tenant ids in insertion order
func (s *Store) List(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := s.db.SelectContext(ctx, &ids, "SELECT id FROM tenants ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return ids, nil
}

// Count returns the number of tenant records
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tenants"); err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return count, nil
}

// quarantine preserves an unreadable record for inspection
func (s *Store) quarantine(ctx context.Context, id int64, data, reason string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tenants_quarantine (id, data, reason) VALUES (?, ?, ?)", id, data, reason)
	if err != nil {
		return fmt.Errorf("insert quarantine record: %w", err)
	}
	return nil
}

// QuarantineCount returns the number of quarantined records, exposed for
// the status endpoint
func (s *Store) QuarantineCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tenants_quarantine"); err != nil {
		return 0, fmt.Errorf("count quarantine: %w", err)
	}
	return count, nil
}

func (s *Store) tenantLock(id int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[id] = l
	return l
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
