// Package recipeshare собирает приложение: хранилище, кеш, внешние клиенты,
// сервисы, маршруты и HTTP-сервер с корректным завершением.
package recipeshare

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/kitikt/BE-Native/internal/cache"
	"github.com/kitikt/BE-Native/internal/cloudinary"
	"github.com/kitikt/BE-Native/internal/config"
	"github.com/kitikt/BE-Native/internal/gemini"
	"github.com/kitikt/BE-Native/internal/lib/jwt"
	"github.com/kitikt/BE-Native/internal/migrations"
	authservice "github.com/kitikt/BE-Native/internal/services/auth"
	categoryservice "github.com/kitikt/BE-Native/internal/services/category"
	commentservice "github.com/kitikt/BE-Native/internal/services/comment"
	recipeservice "github.com/kitikt/BE-Native/internal/services/recipe"
	suggestservice "github.com/kitikt/BE-Native/internal/services/suggest"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	uploader := cloudinary.NewClient(cfg.CloudName, cfg.UploadPreset, cfg.UploadFolder)
	aiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	authService := authservice.NewAuthService(db, jwtMaker)
	recipeService := recipeservice.NewService(db, uploader, cacheRedis, logger)
	categoryService := categoryservice.NewService(db, cacheRedis, logger)
	commentService := commentservice.NewService(db, logger)
	suggestService := suggestservice.NewService(aiClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Services{
		Auth:     authService,
		Recipe:   recipeService,
		Category: categoryService,
		Comment:  commentService,
		Suggest:  suggestService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
