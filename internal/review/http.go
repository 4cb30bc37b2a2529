package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BookNook/internal/auth"
	"BookNook/internal/catalog"
	"BookNook/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log     *zap.Logger
	Service *Service
	JWT     *auth.TokenMaker
}

func (s *Server) Register(r chi.Router) {
	r.Group(func(pr chi.Router) {
		pr.Use(RequireToken(s.JWT))
		pr.Put("/review/{isbn}", s.upsert)
		pr.Delete("/review/{isbn}", s.delete)
	})
}

type upsertReq struct {
	Review string `json:"review"`
}

type mutationResp struct {
	Message string           `json:"message"`
	Reviews []catalog.Review `json:"reviews"`
}

func (s *Server) upsert(w http.ResponseWriter, r *http.Request) {
	username, ok := UsernameFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req upsertReq
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json")
		return
	}

	reviews, err := s.Service.Upsert(r.Context(), chi.URLParam(r, "isbn"), username, req.Review)
	if err != nil {
		s.writeMutationError(w, r, err, "Failed to update review")
		return
	}

	kit.WriteJSON(w, http.StatusOK, mutationResp{
		Message: "Review added/updated successfully",
		Reviews: reviews,
	})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	username, ok := UsernameFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token")
		return
	}

	reviews, err := s.Service.Delete(r.Context(), chi.URLParam(r, "isbn"), username)
	if err != nil {
		s.writeMutationError(w, r, err, "Failed to delete review")
		return
	}

	kit.WriteJSON(w, http.StatusOK, mutationResp{
		Message: "Review deleted successfully",
		Reviews: reviews,
	})
}

func (s *Server) writeMutationError(w http.ResponseWriter, r *http.Request, err error, storageMsg string) {
	switch {
	case errors.Is(err, ErrBookNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "Book not found")
	case errors.Is(err, ErrReviewNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "Review not found")
	default:
		if s.Log != nil {
			s.Log.Error("review mutation failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, storageMsg)
	}
}
