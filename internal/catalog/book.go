package catalog

import (
	"context"
	"strings"
)

type Review struct {
	Username string `json:"username"`
	Text     string `json:"review"`
}

type Book struct {
	ISBN    string   `json:"isbn"`
	Title   string   `json:"title"`
	Author  string   `json:"author"`
	Reviews []Review `json:"reviews"`
}

// Store holds the full catalog. LoadAll returns every book in stored order;
// SaveAll overwrites the whole catalog. There is no per-book mutation:
// callers load, edit the slice, and save it back.
type Store interface {
	LoadAll(ctx context.Context) ([]Book, error)
	SaveAll(ctx context.Context, books []Book) error
	Ping(ctx context.Context) error
}

func FindByISBN(books []Book, isbn string) (Book, bool) {
	for _, b := range books {
		if b.ISBN == isbn {
			return b, true
		}
	}
	return Book{}, false
}

func FilterByAuthor(books []Book, author string) []Book {
	out := make([]Book, 0)
	for _, b := range books {
		if strings.EqualFold(b.Author, author) {
			out = append(out, b)
		}
	}
	return out
}

func FilterByTitle(books []Book, title string) []Book {
	title = strings.ToLower(title)
	out := make([]Book, 0)
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), title) {
			out = append(out, b)
		}
	}
	return out
}
