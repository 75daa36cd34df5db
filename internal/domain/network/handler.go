package network

import (
	"encoding/json"
	"net/http"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/ipinfo"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, resolver ipinfo.PublicIPResolver, log logger.Logger) {
	r.Get("/get-ip", getIPHandler(resolver, log))
}

type ipResponse struct {
	IP string `json:"ip"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// getIPHandler godoc
// @Summary IP pública
// @Description Consulta el servicio externo de lookup de IP y devuelve la IP pública.
// @Tags network
// @Produce json
// @Success 200 {object} ipResponse
// @Failure 500 {object} errorResponse "Error fetching IP"
// @Router /get-ip [get]
func getIPHandler(resolver ipinfo.PublicIPResolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error fetching IP"})
			return
		}

		ip, err := resolver.PublicIP(r.Context())
		if err != nil {
			log.Error("error fetching ip", map[string]any{"err": err})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error fetching IP"})
			return
		}
		writeJSON(w, http.StatusOK, ipResponse{IP: ip})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
