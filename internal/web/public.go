package web

import (
	"net/http"
	"strconv"
	"strings"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
)

type publicView struct {
	siteContent

	AdoptID     int64 // card con el formulario abierto
	AdopterName string
	Alert       string
}

func publicPageHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := publicView{}

		// ?adopt={id}: re-chequea la IP antes de abrir el formulario (solo lectura)
		if raw := strings.TrimSpace(r.URL.Query().Get("adopt")); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err == nil && id > 0 {
				has, err := petsSvc.HasAdopted(r.Context(), middleware.ClientIP(r))
				if err != nil {
					serverError(w, log, err)
					return
				}
				if has {
					v.Alert = pets.AlreadyAdoptedMessage
				} else {
					v.AdoptID = id
				}
			}
		}

		renderPublic(w, r, petsSvc, siteSvc, log, http.StatusOK, v)
	}
}

func publicAdoptHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderPublic(w, r, petsSvc, siteSvc, log, http.StatusBadRequest, publicView{Alert: "invalid form"})
			return
		}

		id, _ := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get("id")), 10, 64)
		name := strings.TrimSpace(r.PostForm.Get("name"))
		if name == "" {
			renderPublic(w, r, petsSvc, siteSvc, log, http.StatusBadRequest, publicView{
				AdoptID: id,
				Alert:   EmptyNameMessage,
			})
			return
		}

		_, err := petsSvc.Adopt(r.Context(), pets.AdoptInput{
			PetID:       id,
			AdopterName: name,
			AdopterIP:   middleware.ClientIP(r),
		})
		if err != nil {
			status, msg := pets.ErrorStatus(err)
			if status == http.StatusInternalServerError {
				log.Error("adopt from view", map[string]any{"pet_id": id, "error": err})
			}
			renderPublic(w, r, petsSvc, siteSvc, log, status, publicView{Alert: msg})
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func renderPublic(
	w http.ResponseWriter,
	r *http.Request,
	petsSvc *pets.Service,
	siteSvc *site.Service,
	log logger.Logger,
	status int,
	v publicView,
) {
	content, err := loadContent(r.Context(), petsSvc, siteSvc)
	if err != nil {
		serverError(w, log, err)
		return
	}
	v.siteContent = content
	render(w, log, status, "public.html", v)
}
