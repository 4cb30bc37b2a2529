package catalog

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BookNook/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register mounts the public read-only routes onto r. Review mutation
// routes live in the review package.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.index)
	r.Get("/books", s.list)
	r.Get("/isbn/{isbn}", s.byISBN)
	r.Get("/author/{author}", s.byAuthor)
	r.Get("/title/{title}", s.byTitle)
	r.Get("/review/{isbn}", s.reviews)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.LoadAll(r.Context())
	if err != nil {
		s.storageError(w, r, err, "Failed to retrieve books")
		return
	}
	kit.WriteJSON(w, http.StatusOK, books)
}

func (s *Server) byISBN(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.LoadAll(r.Context())
	if err != nil {
		s.storageError(w, r, err, "Failed to retrieve book")
		return
	}

	book, ok := FindByISBN(books, chi.URLParam(r, "isbn"))
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Book not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, book)
}

func (s *Server) byAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.LoadAll(r.Context())
	if err != nil {
		s.storageError(w, r, err, "Failed to retrieve books")
		return
	}
	kit.WriteJSON(w, http.StatusOK, FilterByAuthor(books, chi.URLParam(r, "author")))
}

func (s *Server) byTitle(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.LoadAll(r.Context())
	if err != nil {
		s.storageError(w, r, err, "Failed to retrieve books")
		return
	}
	kit.WriteJSON(w, http.StatusOK, FilterByTitle(books, chi.URLParam(r, "title")))
}

type reviewsResp struct {
	Reviews []Review `json:"reviews"`
}

func (s *Server) reviews(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.LoadAll(r.Context())
	if err != nil {
		s.storageError(w, r, err, "Failed to retrieve reviews")
		return
	}

	book, ok := FindByISBN(books, chi.URLParam(r, "isbn"))
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Book not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, reviewsResp{Reviews: book.Reviews})
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Book List</title>
  </head>
  <body>
    <h1>{{.Heading}}</h1>
    {{if not .Books}}<p>No books found for ISBN: {{.Query}}</p>{{end}}
    <ul>
      {{range .Books}}<li><strong>{{.Title}}</strong> by {{.Author}} (ISBN: {{.ISBN}}) - Reviews: {{len .Reviews}}</li>
      {{end}}
    </ul>
  </body>
</html>
`))

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.LoadAll(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("load catalog failed", zap.Error(err))
		}
		http.Error(w, "Failed to retrieve books", http.StatusInternalServerError)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("isbn"))
	heading := "All Books"
	if q != "" {
		heading = "Books for ISBN: " + q
		filtered := make([]Book, 0, 1)
		for _, b := range books {
			if b.ISBN == q {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	var buf bytes.Buffer
	err = indexTmpl.Execute(&buf, struct {
		Heading string
		Query   string
		Books   []Book
	}{heading, q, books})
	if err != nil {
		http.Error(w, "Failed to retrieve books", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) storageError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if s.Log != nil {
		s.Log.Error("catalog storage failed", zap.Error(err), zap.String("path", r.URL.Path))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, msg)
}
