package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "books.json"))
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	in := []Book{
		{ISBN: "0002", Title: "Fairy tales", Author: "Hans Christian Andersen", Reviews: []Review{}},
		{ISBN: "0001", Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: []Review{
			{Username: "alice", Text: "great"},
			{Username: "bob", Text: "fine"},
		}},
	}

	if err := s.SaveAll(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(out) != 2 || out[0].ISBN != "0002" || out[1].ISBN != "0001" {
		t.Fatalf("insertion order not preserved: %+v", out)
	}
	if len(out[1].Reviews) != 2 || out[1].Reviews[0].Username != "alice" {
		t.Fatalf("reviews not preserved: %+v", out[1].Reviews)
	}
}

func TestFileStore_FieldNames(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	books := []Book{{ISBN: "0001", Title: "T", Author: "A", Reviews: []Review{
		{Username: "alice", Text: "great"},
	}}}
	if err := s.SaveAll(ctx, books); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// External readers of the file depend on these exact names.
	for _, field := range []string{`"isbn"`, `"title"`, `"author"`, `"reviews"`, `"username"`, `"review"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("serialized catalog missing field %s:\n%s", field, raw)
		}
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	if _, err := s.LoadAll(context.Background()); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping failure for missing catalog file")
	}
}

func TestFileStore_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewFileStore(path).LoadAll(context.Background()); err == nil {
		t.Fatalf("expected error for invalid catalog file")
	}
}

func TestFileStore_NilReviewsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	raw := `[{"isbn":"0001","title":"T","author":"A","reviews":null}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	books, err := NewFileStore(path).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if books[0].Reviews == nil {
		t.Fatalf("reviews should be normalized to an empty slice")
	}
}
