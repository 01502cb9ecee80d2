package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	branddb "github.com/vetrovegor/catalog-backend/internal/brand/db"
	brandhandler "github.com/vetrovegor/catalog-backend/internal/brand/handler"
	brandservice "github.com/vetrovegor/catalog-backend/internal/brand/service"
	"github.com/vetrovegor/catalog-backend/internal/config"
	importerhandler "github.com/vetrovegor/catalog-backend/internal/importer/handler"
	importerservice "github.com/vetrovegor/catalog-backend/internal/importer/service"
	productdb "github.com/vetrovegor/catalog-backend/internal/product/db"
	producthandler "github.com/vetrovegor/catalog-backend/internal/product/handler"
	productservice "github.com/vetrovegor/catalog-backend/internal/product/service"
	pgclient "github.com/vetrovegor/catalog-backend/pkg/client/postgresql"
	pgtx "github.com/vetrovegor/catalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg *config.Config) *App {
	pgClient, err := pgclient.NewClient(context.TODO(), cfg.PostgreSQL)
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		brandRepository := branddb.New(pgClient, log)
		brandService := brandservice.New(brandRepository, log)

		productRepository := productdb.New(pgClient, log)
		productService := productservice.New(productRepository, brandService, log)

		txManager := pgtx.NewPgManager(pgClient)

		importerService := importerservice.New(brandRepository, productRepository, txManager, log)

		brandHandler := brandhandler.New(brandService, log)

		log.Info("register brand handlers")

		brandHandler.Register(r)

		productHandler := producthandler.New(productService, log)

		log.Info("register product handlers")

		productHandler.Register(r)

		importerHandler := importerhandler.New(importerService, log)

		log.Info("register importer handlers")

		importerHandler.Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil {
		panic("failed to start server")
	}
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
