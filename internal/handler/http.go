package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MONUkushawaha987/tictocBackend/internal/domain"
	"github.com/MONUkushawaha987/tictocBackend/internal/usecase"
)

type Handler struct {
	service *usecase.Service
}

func NewHandler(service *usecase.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(r chi.Router) {
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/", h.rootHandler)
	r.Get("/healthz", h.health)

	r.Post("/api/register", h.register)
	r.Post("/api/login", h.login)
	r.Get("/api/scores", h.scores)
}

func (h *Handler) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`
<html>
<head>
  <title>TicToc Backend</title>
</head>
<body style="font-family: sans-serif;">
  <h1>TicToc Backend</h1>
  <ul>
    <li>Create an account: <strong>POST /api/register</strong> with <code>{"username","password"}</code></li>
    <li>Log in: <strong>POST /api/login</strong> with <code>{"username","password"}</code></li>
    <li>Leaderboard: <strong>GET /api/scores</strong></li>
  </ul>
</body>
</html>
`))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	User    struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	User    struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Score    int    `json:"score"`
	} `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			writeError(w, http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, domain.ErrUserExists):
			writeError(w, http.StatusConflict, "User already exists.")
		default:
			log.Printf("register %q: %v", req.Username, err)
			writeError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	var resp registerResponse
	resp.Message = "Registration successful!"
	resp.User.ID = user.ID
	resp.User.Username = user.Username
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			writeError(w, http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Authentication failed. Invalid username or password.")
		default:
			log.Printf("login %q: %v", req.Username, err)
			writeError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	log.Printf("user logged in: %s", user.Username)

	var resp loginResponse
	resp.Message = "Login successful!"
	resp.User.ID = user.ID
	resp.User.Username = user.Username
	resp.User.Score = user.Score
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) scores(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		log.Printf("scores: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.UserCount(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"users":  count,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
