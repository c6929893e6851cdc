// Package recipeshare предоставляет маршруты для основного приложения.
package recipeshare

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	aisuggest "github.com/kitikt/BE-Native/internal/http/handlers/ai/suggest"
	"github.com/kitikt/BE-Native/internal/http/handlers/auth/login"
	"github.com/kitikt/BE-Native/internal/http/handlers/auth/register"
	categoryadd "github.com/kitikt/BE-Native/internal/http/handlers/category/add"
	categorylist "github.com/kitikt/BE-Native/internal/http/handlers/category/list"
	categoryremove "github.com/kitikt/BE-Native/internal/http/handlers/category/remove"
	categoryupdate "github.com/kitikt/BE-Native/internal/http/handlers/category/update"
	commentcreate "github.com/kitikt/BE-Native/internal/http/handlers/comment/create"
	commentlist "github.com/kitikt/BE-Native/internal/http/handlers/comment/list"
	"github.com/kitikt/BE-Native/internal/http/handlers/health"
	recipecreate "github.com/kitikt/BE-Native/internal/http/handlers/recipe/create"
	recipelist "github.com/kitikt/BE-Native/internal/http/handlers/recipe/list"
	reciperead "github.com/kitikt/BE-Native/internal/http/handlers/recipe/read"
	reciperemove "github.com/kitikt/BE-Native/internal/http/handlers/recipe/remove"
	recipeupdate "github.com/kitikt/BE-Native/internal/http/handlers/recipe/update"
	"github.com/kitikt/BE-Native/internal/http/middlewarectx"
	authservice "github.com/kitikt/BE-Native/internal/services/auth"
	categoryservice "github.com/kitikt/BE-Native/internal/services/category"
	commentservice "github.com/kitikt/BE-Native/internal/services/comment"
	recipeservice "github.com/kitikt/BE-Native/internal/services/recipe"
	suggestservice "github.com/kitikt/BE-Native/internal/services/suggest"
)

// Services — сервисы бизнес-уровня, которые подключаются к маршрутам.
type Services struct {
	Auth     *authservice.AuthService
	Recipe   *recipeservice.Service
	Category *categoryservice.Service
	Comment  *commentservice.Service
	Suggest  *suggestservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
//
// Открытые маршруты: регистрация, вход, чтение рецептов, сводный список
// категорий и комментарии рецепта. Операции записи над рецептами и
// категориями требуют JWT с ролью admin; комментарии и AI-подсказки —
// любой аутентифицированной роли.
func RegisterRoutes(r chi.Router, logger *slog.Logger, services Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/health", health.New())

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/users/register", register.New(logger, services.Auth).ServeHTTP)
		r.Post("/users/login", login.New(logger, services.Auth).ServeHTTP)

		// Литеральный сегмент categories регистрируется до параметра {id}
		r.Get("/recipes/categories", categorylist.New(logger, services.Category).ServeHTTP)
		r.Get("/recipes", recipelist.New(logger, services.Recipe).ServeHTTP)
		r.Get("/recipes/{id}", reciperead.New(logger, services.Recipe).ServeHTTP)
		r.Get("/comments/{recipeId}", commentlist.New(logger, services.Comment).ServeHTTP)

		// Группа с JWT аутентификацией (любая роль)
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(services.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/comments", commentcreate.New(logger, services.Comment).ServeHTTP)
			r.Post("/ai/suggest", aisuggest.New(logger, services.Suggest).ServeHTTP)
		})

		// Группа операций записи: JWT + роль admin
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(services.Auth, logger))
			r.Use(middlewarectx.AdminMiddleware(logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/recipes", recipecreate.New(logger, services.Recipe).ServeHTTP)
			r.Put("/recipes/{id}", recipeupdate.New(logger, services.Recipe).ServeHTTP)
			r.Delete("/recipes/{id}", reciperemove.New(logger, services.Recipe).ServeHTTP)
			r.Post("/recipes/{id}/categories", categoryadd.New(logger, services.Category).ServeHTTP)
			r.Put("/recipes/{id}/categories/{categoryId}", categoryupdate.New(logger, services.Category).ServeHTTP)
			r.Delete("/recipes/{id}/categories/{categoryId}", categoryremove.New(logger, services.Category).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
