package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/msto63/parsex/pkg/csv"
)

func openTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	s, err := Open(Options{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDocumentStore_ImportDocument(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := csv.Document{
		{"title", "author"},
		{"The Hobbit", "J. R. R. Tolkien"},
		{"Dune", "Frank Herbert"},
	}

	inserted, err := s.ImportDocument(ctx, "books", doc, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	count, err := s.CountRows(ctx, "books")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestDocumentStore_ImportDocument_NoHeader(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := csv.Document{
		{"1", "2", "3"},
		{"4", "5", "6"},
	}

	inserted, err := s.ImportDocument(ctx, "numbers", doc, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	// Without a header all records are data and columns are generated.
	var got string
	row := s.db.QueryRowContext(ctx, `SELECT "col2" FROM "numbers" LIMIT 1`)
	if err := row.Scan(&got); err != nil {
		t.Fatalf("failed to read back row: %v", err)
	}
	if got != "2" {
		t.Errorf("col2 = %q, want %q", got, "2")
	}
}

func TestDocumentStore_ImportDocument_Errors(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		table     string
		doc       csv.Document
		useHeader bool
	}{
		{
			name:  "empty document",
			table: "empty",
			doc:   csv.Document{},
		},
		{
			name:  "empty table name",
			table: "",
			doc:   csv.Document{{"a"}},
		},
		{
			name:  "quote in table name",
			table: `bo"oks`,
			doc:   csv.Document{{"a"}},
		},
		{
			name:      "quote in header column",
			table:     "books",
			doc:       csv.Document{{`ti"tle`}, {"The Hobbit"}},
			useHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.ImportDocument(ctx, tt.table, tt.doc, tt.useHeader); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDocumentStore_ImportDocument_Batched(t *testing.T) {
	s, err := Open(Options{Path: ":memory:", BatchSize: 2})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	// Five rows with a batch size of two forces two full batches plus a
	// final partial one.
	doc := make(csv.Document, 5)
	for i := range doc {
		doc[i] = csv.Record{fmt.Sprintf("row%d", i+1)}
	}

	inserted, err := s.ImportDocument(ctx, "batched", doc, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted != 5 {
		t.Errorf("inserted = %d, want 5", inserted)
	}

	count, err := s.CountRows(ctx, "batched")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

func TestDocumentStore_BatchSizeDefault(t *testing.T) {
	s := openTestStore(t)
	if s.batchSize != DefaultBatchSize {
		t.Errorf("batchSize = %d, want %d", s.batchSize, DefaultBatchSize)
	}
}

func TestDocumentStore_ImportDocument_Reimport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := csv.Document{{"a", "b"}}
	for i := 0; i < 2; i++ {
		if _, err := s.ImportDocument(ctx, "pairs", doc, false); err != nil {
			t.Fatalf("import %d failed: %v", i+1, err)
		}
	}

	count, err := s.CountRows(ctx, "pairs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
