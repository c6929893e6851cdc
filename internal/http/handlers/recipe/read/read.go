// Package read реализует HTTP-обработчик для получения конкретного рецепта по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения рецепта
// и возвращает данные рецепта в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения рецепта.
type Service interface {
	GetByID(ctx context.Context, recipeUID string) (*models.Recipe, error)
}

// Handler обрабатывает запросы на получение рецепта по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить рецепт по ID
// @Tags Recipes
// @Produce  json
// @Param id path string true "UID рецепта"
// @Success 200 {object} map[string]any "Рецепт"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "id")

	recipe, err := h.service.GetByID(r.Context(), recipeUID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			log.Error("recipe not found", slog.String("uid", recipeUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to read recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read recipe"))
		return
	}

	log.Info("success to read recipe", slog.String("uid", recipe.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"recipe": recipe,
	}))
}
