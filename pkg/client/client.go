// Package client is a small Go client for the public read endpoints of the
// catalog service.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"BookNook/internal/catalog"
)

var (
	ErrNotFound  = errors.New("book not found")
	ErrBadStatus = errors.New("unexpected status")
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) GetAllBooks(ctx context.Context) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := c.getJSON(ctx, "/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBookByISBN(ctx context.Context, isbn string) (catalog.Book, error) {
	var b catalog.Book
	if err := c.getJSON(ctx, "/isbn/"+url.PathEscape(isbn), &b); err != nil {
		return catalog.Book{}, err
	}
	return b, nil
}

func (c *Client) GetBooksByAuthor(ctx context.Context, author string) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := c.getJSON(ctx, "/author/"+url.PathEscape(author), &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBooksByTitle(ctx context.Context, title string) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := c.getJSON(ctx, "/title/"+url.PathEscape(title), &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
