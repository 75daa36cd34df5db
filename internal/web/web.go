// Package web sirve las vistas HTML (pública y admin) sobre los mismos services que la API.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"

	"pet-adoption/internal/domain/admin"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"
	"pet-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}).ParseFS(templatesFS, "templates/*.html"))

const EmptyNameMessage = "Please enter your name to adopt."

type Options struct {
	Pets   *pets.Service
	Site   *site.Service
	Admin  *admin.Service
	Logger logger.Logger
}

func RegisterRoutes(r chi.Router, opts Options) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	log := opts.Logger.With(map[string]any{"component": "web"})

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", publicPageHandler(opts.Pets, opts.Site, log))
	r.Post("/ui/adopt", publicAdoptHandler(opts.Pets, opts.Site, log))

	r.Get("/admin", adminPageHandler(opts.Pets, opts.Site, log))
	r.Post("/admin/login", adminLoginHandler(opts.Pets, opts.Site, opts.Admin, log))
	r.Post("/admin/logout", adminLogoutHandler())

	r.Group(func(r chi.Router) {
		r.Use(requireAdminPage)

		r.Post("/admin/page-details", adminPageDetailsHandler(opts.Pets, opts.Site, log))
		r.Post("/admin/website-title", adminWebsiteTitleHandler(opts.Pets, opts.Site, log))
		r.Post("/admin/pets", adminCreatePetHandler(opts.Pets, opts.Site, log))
		r.Post("/admin/pets/{id}", adminUpdatePetHandler(opts.Pets, opts.Site, log))
		r.Post("/admin/pets/{id}/remove", adminRemovePetHandler(opts.Pets, opts.Site, log))
		r.Post("/admin/pets/{id}/unadopt", adminUnadoptPetHandler(opts.Pets, opts.Site, log))
	})
}

// siteContent es lo que ambas vistas leen en cada render.
type siteContent struct {
	WebsiteTitle string
	Page         site.PageDetails
	Pets         []pets.Pet
}

// loadContent lee mascotas, textos y título en paralelo.
// Si los singletons faltan se usan los defaults (la vista nunca falla por eso).
func loadContent(ctx context.Context, petsSvc *pets.Service, siteSvc *site.Service) (siteContent, error) {
	var c siteContent
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := petsSvc.List(ctx)
		c.Pets = list
		return err
	})
	g.Go(func() error {
		p, err := siteSvc.PageDetails(ctx)
		if errors.Is(err, site.ErrNotFound) {
			p, err = site.DefaultPageDetails, nil
		}
		c.Page = p
		return err
	})
	g.Go(func() error {
		t, err := siteSvc.WebsiteTitle(ctx)
		if errors.Is(err, site.ErrNotFound) {
			t, err = site.DefaultWebsiteTitle, nil
		}
		c.WebsiteTitle = t.Title
		return err
	})

	if err := g.Wait(); err != nil {
		return siteContent{}, err
	}
	return c, nil
}

// render ejecuta a un buffer: si el template falla no queda una respuesta a medias.
func render(w http.ResponseWriter, log logger.Logger, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("render template", map[string]any{"template": name, "error": err})
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func serverError(w http.ResponseWriter, log logger.Logger, err error) {
	log.Error("load page", map[string]any{"error": err})
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
