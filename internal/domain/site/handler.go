package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler) {
	r.Get("/page-details", getPageDetailsHandler(svc))
	r.Get("/website-title", getWebsiteTitleHandler(svc))

	r.Group(func(ar chi.Router) {
		ar.Use(requireAdmin)

		ar.Put("/update-page-details", updatePageDetailsHandler(svc))
		ar.Put("/update-website-title", updateWebsiteTitleHandler(svc))
	})
}

type pageDetailsResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type websiteTitleResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type updatePageDetailsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateWebsiteTitleRequest struct {
	Title string `json:"title"`
}

type updatedResponse struct {
	Updated int64 `json:"updated"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// getPageDetailsHandler godoc
// @Summary Texto de la página pública
// @Tags site
// @Produce json
// @Success 200 {object} pageDetailsResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /page-details [get]
func getPageDetailsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.PageDetails(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pageDetailsResponse{ID: p.ID, Title: p.Title, Description: p.Description})
	}
}

// updatePageDetailsHandler godoc
// @Summary Actualizar texto de la página pública
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param payload body updatePageDetailsRequest true "Título y descripción"
// @Success 200 {object} updatedResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /update-page-details [put]
func updatePageDetailsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePageDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		n, err := svc.UpdatePageDetails(r.Context(), req.Title, req.Description)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

// getWebsiteTitleHandler godoc
// @Summary Título del sitio
// @Tags site
// @Produce json
// @Success 200 {object} websiteTitleResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /website-title [get]
func getWebsiteTitleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.WebsiteTitle(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, websiteTitleResponse{ID: t.ID, Title: t.Title})
	}
}

// updateWebsiteTitleHandler godoc
// @Summary Actualizar título del sitio
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSession
// @Param payload body updateWebsiteTitleRequest true "Título"
// @Success 200 {object} updatedResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /update-website-title [put]
func updateWebsiteTitleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateWebsiteTitleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		n, err := svc.UpdateWebsiteTitle(r.Context(), req.Title)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
