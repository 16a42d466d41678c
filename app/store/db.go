package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/linkhub/app/enum"
)

// Store keeps visitor preferences in SQLite or PostgreSQL.
type Store struct {
	db     *sqlx.DB
	dbType enum.DBType
	mu     RWLocker
}

// New creates a new Store with the given database URL.
// Automatically detects database type from URL:
// - postgres:// or postgresql:// -> PostgreSQL
// - everything else -> SQLite
func New(dbURL string) (*Store, error) {
	dbType := detectDBType(dbURL)

	var db *sqlx.DB
	var err error
	var locker RWLocker

	switch dbType {
	case enum.DBTypePostgres:
		db, err = connectPostgres(dbURL)
		locker = noopLocker{}
	default:
		db, err = connectSQLite(dbURL)
		locker = &sync.RWMutex{}
	}

	if err != nil {
		return nil, err
	}

	s := &Store{db: db, dbType: dbType, mu: locker}

	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[DEBUG] initialized %s preference store", s.dbType)
	return s, nil
}

// detectDBType determines database type from URL.
func detectDBType(url string) enum.DBType {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return enum.DBTypePostgres
	}
	return enum.DBTypeSQLite
}

// connectSQLite establishes SQLite connection with pragmas.
func connectSQLite(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=1000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil { //nolint:noctx // init-time, no context available
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	// single writer
	db.SetMaxOpenConns(1)

	return db, nil
}

// connectPostgres establishes PostgreSQL connection.
func connectPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// createSchema creates the preferences table if it doesn't exist.
func (s *Store) createSchema() error {
	var schema string
	switch s.dbType {
	case enum.DBTypePostgres:
		schema = `
			CREATE TABLE IF NOT EXISTS preferences (
				visitor TEXT PRIMARY KEY,
				theme TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT NOW(),
				updated_at TIMESTAMP DEFAULT NOW()
			)`
	default:
		schema = `
			CREATE TABLE IF NOT EXISTS preferences (
				visitor TEXT PRIMARY KEY,
				theme TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`
	}
	if _, err := s.db.Exec(schema); err != nil { //nolint:noctx // init-time, no context available
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Get returns the stored theme for the visitor.
// Returns ErrNotFound if nothing is stored.
func (s *Store) Get(ctx context.Context, visitor string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var theme string
	query := s.adoptQuery("SELECT theme FROM preferences WHERE visitor = ?")
	err := s.db.GetContext(ctx, &theme, query, NormalizeVisitor(visitor))
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference for %q: %w", visitor, err)
	}
	return theme, nil
}

// Set stores the theme for the visitor, replacing any previous value.
func (s *Store) Set(ctx context.Context, visitor, theme string) error {
	visitor = NormalizeVisitor(visitor)
	if visitor == "" {
		return errors.New("empty visitor id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	query := s.adoptQuery(`
		INSERT INTO preferences (visitor, theme, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, visitor, theme, now, now); err != nil {
		return fmt.Errorf("failed to set preference for %q: %w", visitor, err)
	}
	return nil
}

// Delete removes the visitor's preference.
// Returns ErrNotFound if nothing is stored.
func (s *Store) Delete(ctx context.Context, visitor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery("DELETE FROM preferences WHERE visitor = ?")
	result, err := s.db.ExecContext(ctx, query, NormalizeVisitor(visitor))
	if err != nil {
		return fmt.Errorf("failed to delete preference for %q: %w", visitor, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored preferences per theme.
func (s *Store) Count(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []struct {
		Theme string `db:"theme"`
		Total int    `db:"total"`
	}
	if err := s.db.SelectContext(ctx, &rows, "SELECT theme, COUNT(*) AS total FROM preferences GROUP BY theme"); err != nil {
		return nil, fmt.Errorf("failed to count preferences: %w", err)
	}
	res := make(map[string]int, len(rows))
	for _, r := range rows {
		res[r.Theme] = r.Total
	}
	return res, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// adoptQuery converts SQLite query syntax to PostgreSQL:
// - placeholders: ? → $1, $2, ...
// - case: excluded. → EXCLUDED.
func (s *Store) adoptQuery(query string) string {
	if s.dbType != enum.DBTypePostgres {
		return query
	}

	query = strings.ReplaceAll(query, "excluded.", "EXCLUDED.")

	result := make([]byte, 0, len(query)+10)
	paramNum := 1
	for i := range len(query) {
		if query[i] != '?' {
			result = append(result, query[i])
			continue
		}
		result = append(result, '$')
		result = append(result, strconv.Itoa(paramNum)...)
		paramNum++
	}
	return string(result)
}
