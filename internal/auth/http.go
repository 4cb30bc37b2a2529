package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"BookNook/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log   *zap.Logger
	Store UserStore
	JWT   *TokenMaker
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req credentialsReq
	if err := dec.Decode(&req); err != nil {
		return credentialsReq{}, err
	}

	req.Username = strings.TrimSpace(req.Username)
	return req, nil
}

type messageResp struct {
	Message string `json:"message"`
}

func (s *Server) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Username and password required")
		return
	}
	if req.Username == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Username and password required")
		return
	}

	id := "u_" + uuid.NewString()

	if err := s.Store.Create(r.Context(), req.Username, req.Password, id); err != nil {
		if errors.Is(err, ErrUserExists) {
			kit.WriteError(w, r, http.StatusConflict, "User already exists")
			return
		}
		s.Log.Error("register failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error")
		return
	}

	kit.WriteJSON(w, http.StatusCreated, messageResp{Message: "User registered successfully"})
}

type loginResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	u, err := s.Store.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		// Same answer for unknown user and wrong password.
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tok, err := s.JWT.New(u.ID, u.Username)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error")
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{Message: "Login successful!", Token: tok})
}
