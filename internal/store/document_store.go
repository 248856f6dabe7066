package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	mdwlog "github.com/msto63/parsex/pkg/core/log"
	"github.com/msto63/parsex/pkg/csv"
)

// DefaultBatchSize is the number of rows per insert transaction when
// Options does not set one
const DefaultBatchSize = 500

// DocumentStore persists parsed documents into a SQLite database
type DocumentStore struct {
	db        *sql.DB
	logger    *mdwlog.Logger
	batchSize int
}

// Options configures a DocumentStore
type Options struct {
	// Path is the SQLite database file; ":memory:" works for tests
	Path string

	// BatchSize bounds the number of rows per insert transaction.
	// Zero selects DefaultBatchSize.
	BatchSize int

	// Logger receives store diagnostics; nil selects the default logger
	Logger *mdwlog.Logger
}

// Open opens or creates the SQLite database behind the store
func Open(opts Options) (*DocumentStore, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", opts.Path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", opts.Path, err)
	}
	return &DocumentStore{
		db:        db,
		logger:    opts.Logger.WithField("component", "document-store"),
		batchSize: opts.BatchSize,
	}, nil
}

// Close releases the underlying database handle
func (s *DocumentStore) Close() error {
	return s.db.Close()
}

// ImportDocument creates the target table from the document's arity and
// inserts every record in a single transaction. With useHeader the first
// record provides the column names and is not inserted as data;
// otherwise columns are named col1..colN. Returns the number of rows
// inserted.
func (s *DocumentStore) ImportDocument(ctx context.Context, table string, doc csv.Document, useHeader bool) (int, error) {
	if len(doc) == 0 {
		return 0, fmt.Errorf("document has no records")
	}
	if err := validateIdentifier(table); err != nil {
		return 0, err
	}

	columns := make([]string, len(doc[0]))
	rows := doc
	if useHeader {
		for i, name := range doc[0] {
			columns[i] = name
		}
		rows = doc[1:]
	} else {
		for i := range columns {
			columns[i] = fmt.Sprintf("col%d", i+1)
		}
	}
	for _, name := range columns {
		if err := validateIdentifier(name); err != nil {
			return 0, err
		}
	}

	if err := s.createTable(ctx, table, columns); err != nil {
		return 0, err
	}

	inserted, err := s.insertRows(ctx, table, columns, rows)
	if err != nil {
		return inserted, err
	}

	s.logger.Info("Document imported", mdwlog.Fields{
		"table": table,
		"rows":  inserted,
	})
	return inserted, nil
}

// createTable creates the target table with TEXT columns
func (s *DocumentStore) createTable(ctx context.Context, table string, columns []string) error {
	defs := make([]string, len(columns))
	for i, name := range columns {
		defs[i] = fmt.Sprintf("%q TEXT", name)
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", table, strings.Join(defs, ", "))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// insertRows inserts all rows in batches of the store's batch size, one
// transaction with a prepared statement per batch. Committed batches stay
// committed when a later batch fails; the returned count reflects what
// landed. Every record shares the document arity, which the parser has
// already enforced.
func (s *DocumentStore) insertRows(ctx context.Context, table string, columns []string, rows []csv.Record) (int, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	quoted := make([]string, len(columns))
	for i, name := range columns {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	query := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), placeholders)

	inserted := 0
	for start := 0; start < len(rows); start += s.batchSize {
		end := start + s.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		n, err := s.insertBatch(ctx, query, rows[start:end])
		inserted += n
		if err != nil {
			return inserted, err
		}
		s.logger.Debug("Batch committed", mdwlog.Fields{
			"table": table,
			"rows":  n,
		})
	}
	return inserted, nil
}

// insertBatch inserts one batch of rows inside a single transaction
func (s *DocumentStore) insertBatch(ctx context.Context, query string, rows []csv.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		args := make([]interface{}, len(row))
		for j, field := range row {
			args[j] = field
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}
	return len(rows), nil
}

// CountRows returns the number of rows in a table
func (s *DocumentStore) CountRows(ctx context.Context, table string) (int, error) {
	if err := validateIdentifier(table); err != nil {
		return 0, err
	}
	var count int
	row := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %q", table))
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// validateIdentifier rejects names that cannot be used safely as quoted
// SQL identifiers
func validateIdentifier(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if strings.ContainsRune(name, '"') {
		return fmt.Errorf("identifier contains invalid character: %s", name)
	}
	return nil
}
