package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore is the swappable persistent backend. It keeps the same
// load-everything/save-everything contract as FileStore: SaveAll replaces
// the stored catalog wholesale inside one transaction.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) LoadAll(ctx context.Context) ([]Book, error) {
	var books []Book

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT isbn, title, author
			FROM books
			ORDER BY position ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		byISBN := map[string]int{}
		for rows.Next() {
			var b Book
			if err := rows.Scan(&b.ISBN, &b.Title, &b.Author); err != nil {
				return err
			}
			b.Reviews = []Review{}
			byISBN[b.ISBN] = len(books)
			books = append(books, b)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		rrows, err := s.db.QueryContext(ctx, `
			SELECT isbn, username, review
			FROM reviews
			ORDER BY isbn, position ASC
		`)
		if err != nil {
			return err
		}
		defer rrows.Close()

		for rrows.Next() {
			var isbn string
			var rv Review
			if err := rrows.Scan(&isbn, &rv.Username, &rv.Text); err != nil {
				return err
			}
			if i, ok := byISBN[isbn]; ok {
				books[i].Reviews = append(books[i].Reviews, rv)
			}
		}
		return rrows.Err()
	})

	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

func (s *PostgresStore) SaveAll(ctx context.Context, books []Book) error {
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `DELETE FROM reviews`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM books`); err != nil {
			return err
		}

		for i, b := range books {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO books (isbn, title, author, position)
				VALUES ($1, $2, $3, $4)
			`, b.ISBN, b.Title, b.Author, i); err != nil {
				return err
			}
			for j, rv := range b.Reviews {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO reviews (isbn, username, review, position)
					VALUES ($1, $2, $3, $4)
				`, b.ISBN, rv.Username, rv.Text, j); err != nil {
					return err
				}
			}
		}

		return tx.Commit()
	})

	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
