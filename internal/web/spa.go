package web

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SPA sirve un frontend compilado desde dir, con index.html como fallback
// para rutas del cliente. Sin dir (o sin index.html) responde 404 JSON.
func SPA(dir string) http.HandlerFunc {
	dir = strings.TrimSpace(dir)

	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			notFound(w)
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		file := filepath.Join(dir, filepath.FromSlash(clean))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			http.ServeFile(w, r, file)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			notFound(w)
			return
		}
		http.ServeFile(w, r, index)
	}
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
}
