package review

import (
	"context"
	"errors"
	"sync"

	"BookNook/internal/catalog"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
)

// Service enforces one review per user per book. Each mutation is a full
// load-mutate-save pass over the catalog, serialized by mu so concurrent
// writers cannot drop each other's updates.
type Service struct {
	mu    sync.Mutex
	store catalog.Store
}

func NewService(store catalog.Store) *Service {
	return &Service{store: store}
}

// Upsert replaces the caller's existing review in place or appends a new
// one, then returns the book's updated review list.
func (s *Service) Upsert(ctx context.Context, isbn, username, text string) ([]catalog.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	i := indexByISBN(books, isbn)
	if i < 0 {
		return nil, ErrBookNotFound
	}

	book := &books[i]
	if j := indexByUsername(book.Reviews, username); j >= 0 {
		book.Reviews[j].Text = text
	} else {
		book.Reviews = append(book.Reviews, catalog.Review{Username: username, Text: text})
	}

	if err := s.store.SaveAll(ctx, books); err != nil {
		return nil, err
	}
	return book.Reviews, nil
}

// Delete removes the caller's review, leaving everyone else's untouched
// and in order.
func (s *Service) Delete(ctx context.Context, isbn, username string) ([]catalog.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	i := indexByISBN(books, isbn)
	if i < 0 {
		return nil, ErrBookNotFound
	}

	book := &books[i]
	j := indexByUsername(book.Reviews, username)
	if j < 0 {
		return nil, ErrReviewNotFound
	}

	book.Reviews = append(book.Reviews[:j], book.Reviews[j+1:]...)

	if err := s.store.SaveAll(ctx, books); err != nil {
		return nil, err
	}
	return book.Reviews, nil
}

func indexByISBN(books []catalog.Book, isbn string) int {
	for i, b := range books {
		if b.ISBN == isbn {
			return i
		}
	}
	return -1
}

func indexByUsername(reviews []catalog.Review, username string) int {
	for i, r := range reviews {
		if r.Username == username {
			return i
		}
	}
	return -1
}
