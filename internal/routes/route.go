package routes

import (
	"net/http"
	"path/filepath"

	"istanfix/internal/auth"
	"istanfix/internal/config"
	"istanfix/internal/handlers"
	"istanfix/internal/logger"
	mdlwr "istanfix/internal/middleware"
	"istanfix/internal/services"
	"istanfix/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, "istanfix")

	uploads, err := storage.NewUploadStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		logr.Fatal("failed to init upload store", zap.Error(err))
	}

	authSvc := services.NewAuthService(db, cfg, logr)
	referenceSvc := services.NewReferenceService(db)
	reportSvc := services.NewReportService(db)
	commentSvc := services.NewCommentService(db)

	authMW := mdlwr.NewAuthMiddleware(jwtMgr, logr.Logger)

	authHandler := handlers.NewAuthHandler(authSvc, jwtMgr, cfg, logr)
	referenceHandler := handlers.NewReferenceHandler(referenceSvc, logr.Logger)
	reportHandler := handlers.NewReportHandler(reportSvc, uploads, logr.Logger)
	commentHandler := handlers.NewCommentHandler(commentSvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Get("/categories", referenceHandler.ListCategories)
		r.Get("/districts", referenceHandler.ListDistricts)
		r.Get("/districts/{id}/neighborhoods", referenceHandler.ListDistrictNeighborhoods)
		r.Get("/neighborhoods", referenceHandler.ListNeighborhoods)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", reportHandler.List)
			r.Get("/category/{categoryId}", reportHandler.ListByCategory)
			r.Get("/{reportId}/comments", commentHandler.ListByReport)

			// Mutations require a verified token
			r.Group(func(r chi.Router) {
				r.Use(authMW.JWTAuth)
				r.Post("/", reportHandler.Create)
				r.Put("/{id}/status", reportHandler.UpdateStatus)
				r.Delete("/{id}", reportHandler.Delete)
				r.Post("/{reportId}/comments", commentHandler.Create)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authMW.JWTAuth)
			r.Delete("/comments/{commentId}", commentHandler.Delete)
		})
	})

	// Uploaded images
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// Static pages; the login page is the landing page
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(cfg.WebDir, "login.html"))
	})
	for _, page := range []string{"index.html", "report.html", "login.html", "signup.html", "style.css"} {
		page := page
		r.Get("/"+page, func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(cfg.WebDir, page))
		})
	}

	return r
}
