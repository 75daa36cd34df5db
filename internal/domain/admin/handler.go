package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// IncorrectPasswordMessage es el texto que ve quien intenta entrar con un password errado.
const IncorrectPasswordMessage = "Incorrect password"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))
	r.Get("/session", sessionHandler())
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// loginHandler godoc
// @Summary Login de admin
// @Description Intercambia el password de admin por un token de sesión (Bearer) con vencimiento.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Password"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse "Incorrect password"
// @Failure 503 {object} errorResponse "admin login is not configured"
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Login(r.Context(), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidPassword):
				writeError(w, http.StatusUnauthorized, IncorrectPasswordMessage)
			case errors.Is(err, ErrDisabled):
				writeError(w, http.StatusServiceUnavailable, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token, ExpiresAt: sess.ExpiresAt})
	}
}

// sessionHandler godoc
// @Summary Estado de la sesión
// @Tags admin
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
			return
		}
		exp := claims.ExpiresAt
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, ExpiresAt: &exp})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
