package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BookNook/internal/catalog"
	"BookNook/pkg/client"
)

func newTS(t *testing.T) *httptest.Server {
	t.Helper()

	store := catalog.NewFileStore(filepath.Join(t.TempDir(), "books.json"))
	books := []catalog.Book{
		{ISBN: "0001", Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: []catalog.Review{}},
		{ISBN: "0009", Title: "Animal Farm", Author: "George Orwell", Reviews: []catalog.Review{}},
	}
	if err := store.SaveAll(context.Background(), books); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := &catalog.Server{Store: store, Log: zap.NewNop()}
	r := chi.NewRouter()
	s.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestClientReads(t *testing.T) {
	ts := newTS(t)
	c := client.New(ts.URL)
	ctx := context.Background()

	books, err := c.GetAllBooks(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("got %d books", len(books))
	}

	b, err := c.GetBookByISBN(ctx, "0009")
	if err != nil {
		t.Fatalf("isbn: %v", err)
	}
	if b.Title != "Animal Farm" {
		t.Fatalf("got %+v", b)
	}

	if _, err := c.GetBookByISBN(ctx, "9999"); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}

	byAuthor, err := c.GetBooksByAuthor(ctx, "george orwell")
	if err != nil {
		t.Fatalf("author: %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].ISBN != "0009" {
		t.Fatalf("got %+v", byAuthor)
	}

	byTitle, err := c.GetBooksByTitle(ctx, "fall")
	if err != nil {
		t.Fatalf("title: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].ISBN != "0001" {
		t.Fatalf("got %+v", byTitle)
	}
}
