package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/domain/admin"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type adminView struct {
	siteContent

	Authenticated bool
	Editing       *pets.Pet
	Notice        string
	Error         string
}

func isAdmin(r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	return ok && claims.IsAdmin()
}

// requireAdminPage es la versión HTML de middleware.RequireAdmin: redirige al login.
func requireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func adminPageHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			render(w, log, http.StatusOK, "admin.html", adminView{siteContent: loginContent(r, siteSvc)})
			return
		}

		v := adminView{Notice: r.URL.Query().Get("notice")}
		editID, _ := strconv.ParseInt(r.URL.Query().Get("edit"), 10, 64)
		renderAdmin(w, r, petsSvc, siteSvc, log, http.StatusOK, v, editID)
	}
}

func adminLoginHandler(petsSvc *pets.Service, siteSvc *site.Service, adminSvc *admin.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		sess, err := adminSvc.Login(r.Context(), r.PostForm.Get("password"))
		if err != nil {
			status, msg := http.StatusUnauthorized, admin.IncorrectPasswordMessage
			if errors.Is(err, admin.ErrDisabled) {
				status, msg = http.StatusServiceUnavailable, admin.ErrDisabled.Error()
			} else if !errors.Is(err, admin.ErrInvalidPassword) {
				log.Error("admin login", map[string]any{"error": err})
				status, msg = http.StatusInternalServerError, "login failed"
			}
			render(w, log, status, "admin.html", adminView{siteContent: loginContent(r, siteSvc), Error: msg})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.Token,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func adminLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func adminPageDetailsHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		_, err := siteSvc.UpdatePageDetails(r.Context(),
			strings.TrimSpace(r.PostForm.Get("title")),
			strings.TrimSpace(r.PostForm.Get("description")))
		if err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, 0)
			return
		}
		redirectNotice(w, r, "Page details updated")
	}
}

func adminWebsiteTitleHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		_, err := siteSvc.UpdateWebsiteTitle(r.Context(), strings.TrimSpace(r.PostForm.Get("title")))
		if err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, 0)
			return
		}
		redirectNotice(w, r, "Website title updated")
	}
}

func adminCreatePetHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pets.ParseUploadForm(r); err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, pets.ErrInvalidInput, 0)
			return
		}
		img, closeFile, err := pets.FormImage(r)
		if err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, 0)
			return
		}
		defer closeFile()

		_, err = petsSvc.Create(r.Context(), pets.CreateInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Image:       img,
		})
		if err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, 0)
			return
		}
		redirectNotice(w, r, "Pet added")
	}
}

func adminUpdatePetHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := formPathID(r)
		if !ok {
			adminFailure(w, r, petsSvc, siteSvc, log, pets.ErrNotFound, 0)
			return
		}
		if err := pets.ParseUploadForm(r); err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, pets.ErrInvalidInput, id)
			return
		}
		img, closeFile, err := pets.FormImage(r)
		if err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, id)
			return
		}
		defer closeFile()

		n, err := petsSvc.Update(r.Context(), id, pets.UpdateInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Image:       img,
		})
		if err == nil && n == 0 {
			err = pets.ErrNotFound
		}
		if err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, id)
			return
		}
		redirectNotice(w, r, "Pet updated")
	}
}

func adminRemovePetHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := formPathID(r)
		if !ok {
			adminFailure(w, r, petsSvc, siteSvc, log, pets.ErrNotFound, 0)
			return
		}
		if _, err := petsSvc.Remove(r.Context(), id); err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, 0)
			return
		}
		redirectNotice(w, r, "Pet removed")
	}
}

func adminUnadoptPetHandler(petsSvc *pets.Service, siteSvc *site.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := formPathID(r)
		if !ok {
			adminFailure(w, r, petsSvc, siteSvc, log, pets.ErrNotFound, 0)
			return
		}
		if _, err := petsSvc.Unadopt(r.Context(), id); err != nil {
			adminFailure(w, r, petsSvc, siteSvc, log, err, 0)
			return
		}
		redirectNotice(w, r, "Pet unadopted")
	}
}

func renderAdmin(
	w http.ResponseWriter,
	r *http.Request,
	petsSvc *pets.Service,
	siteSvc *site.Service,
	log logger.Logger,
	status int,
	v adminView,
	editID int64,
) {
	content, err := loadContent(r.Context(), petsSvc, siteSvc)
	if err != nil {
		serverError(w, log, err)
		return
	}
	v.siteContent = content
	v.Authenticated = true

	if editID > 0 {
		for i := range content.Pets {
			if content.Pets[i].ID == editID {
				v.Editing = &content.Pets[i]
				break
			}
		}
	}
	render(w, log, status, "admin.html", v)
}

func adminFailure(
	w http.ResponseWriter,
	r *http.Request,
	petsSvc *pets.Service,
	siteSvc *site.Service,
	log logger.Logger,
	err error,
	editID int64,
) {
	status, msg := pets.ErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("admin action", map[string]any{"path": r.URL.Path, "error": err})
	}
	renderAdmin(w, r, petsSvc, siteSvc, log, status, adminView{Error: msg}, editID)
}

// loginContent solo necesita el título del sitio; un error de lectura no bloquea el login.
func loginContent(r *http.Request, siteSvc *site.Service) siteContent {
	title := site.DefaultWebsiteTitle.Title
	if t, err := siteSvc.WebsiteTitle(r.Context()); err == nil {
		title = t.Title
	}
	return siteContent{WebsiteTitle: title}
}

func redirectNotice(w http.ResponseWriter, r *http.Request, notice string) {
	http.Redirect(w, r, "/admin?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}

func formPathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	return id, err == nil
}
