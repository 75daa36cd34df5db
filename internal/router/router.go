package router

import (
	"context"
	"net/http"
	"strings"

	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/admin"
	"pet-adoption/internal/domain/network"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/site"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/ipinfo"
	"pet-adoption/internal/ports/media"
	"pet-adoption/internal/web"

	_ "pet-adoption/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	// Opcional: si vienen nil se usan repos in-memory (modo dev).
	PetRepo  pets.Repository
	SiteRepo site.Repository

	Images     media.ImageStore
	Notifier   pets.AdoptionNotifier   // nil = sin notificaciones
	IPResolver ipinfo.PublicIPResolver // nil = /get-ip responde 500

	AuthVerifier  auth.AuthVerifier // puede ser nil: ninguna ruta admin queda accesible
	SessionIssuer auth.SessionIssuer
	AdminPassword string

	ImagesDir   string // servido en /images/*
	FrontendDir string // SPA opcional para rutas no encontradas

	// TrustProxy habilita X-Real-IP / X-Forwarded-For como IP del visitante.
	// Solo detrás de un proxy que reescriba esos headers.
	TrustProxy bool
}

func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLog(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Tracing)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petRepo, siteRepo := opts.PetRepo, opts.SiteRepo
	if petRepo == nil {
		petRepo = mem.NewPetRepo()
	}
	if siteRepo == nil {
		// el store in-memory arranca vacío: cargamos los textos por defecto
		siteRepo = mem.NewSiteRepo()
		_ = siteRepo.EnsureDefaults(context.Background(), site.DefaultPageDetails, site.DefaultWebsiteTitle)
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo, opts.Images, opts.Notifier)
	siteSvc := site.NewService(siteRepo)
	adminSvc := admin.NewService(opts.AdminPassword, opts.SessionIssuer)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, middleware.RequireAdmin)
	site.RegisterRoutes(r, siteSvc, middleware.RequireAdmin)
	admin.RegisterRoutes(r, adminSvc)
	network.RegisterRoutes(r, opts.IPResolver, opts.Logger)

	web.RegisterRoutes(r, web.Options{
		Pets:   petsSvc,
		Site:   siteSvc,
		Admin:  adminSvc,
		Logger: opts.Logger,
	})

	if dir := strings.TrimSpace(opts.ImagesDir); dir != "" {
		r.Handle("/images/*", imagesHandler(dir))
	}

	r.NotFound(web.SPA(opts.FrontendDir))

	return r
}

// imagesHandler sirve las subidas en un sandbox: un archivo con scripts
// no corre con el origin del sitio.
func imagesHandler(dir string) http.Handler {
	fs := http.StripPrefix("/images/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "sandbox; default-src 'none'; img-src 'self'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		fs.ServeHTTP(w, r)
	})
}
