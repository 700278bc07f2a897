package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/contacts/internal/contact"
)

//go:embed schema.sql
var schemaSQL string

// DefaultPath is the database file used when no path is configured.
// It is relative to the working directory.
const DefaultPath = "contacts.db"

// Store provides durable storage for contacts.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and ensures the
// contacts table exists.
//
// Failures to open or configure the connection are CONNECTION_FAILURE.
// Failures creating the table are SCHEMA_ERROR. In both cases the
// connection is closed before returning.
//
// This function is idempotent - safe to call on every startup.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, connectionError(path, err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, connectionError(path, err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, connectionError(path, err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, &contact.Error{
			Code:    contact.ErrCodeSchema,
			Message: "error creating table",
			Op:      "open store",
			Err:     err,
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connectionError(path string, err error) *contact.Error {
	return &contact.Error{
		Code:    contact.ErrCodeConnectionFailure,
		Message: fmt.Sprintf("error connecting to database %q", path),
		Op:      "open store",
		Err:     err,
	}
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the contacts table if it doesn't exist.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Count returns the number of stored contacts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, contact.NewStorageError("count contacts", err)
	}
	return n, nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
