// Package list реализует HTTP-обработчик сводного списка категорий.
//
// Категории собираются по всем рецептам и дедуплицируются по имени —
// первая встреченная категория выигрывает, привязка к рецепту отбрасывается.
// Так вел себя исходный продукт; поведение перенесено как есть, хотя
// дедупликация по имени выглядит скорее недосмотром, чем замыслом.
// 404 возвращается при отсутствии рецептов вообще, а не категорий.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики сводного списка категорий.
type Service interface {
	ListAll(ctx context.Context) ([]models.Category, error)
}

// Handler обрабатывает запросы на получение всех категорий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список категорий по всем рецептам
// @Description Возвращает категории всех рецептов, дедуплицированные по имени.
// @Tags Categories
// @Produce  json
// @Success 200 {object} map[string]any "Список категорий"
// @Failure 404 {object} response.ErrorResponse "Нет ни одного рецепта"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	categories, err := h.service.ListAll(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			log.Error("no recipes found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("no recipes found"))
			return
		}
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list categories"))
		return
	}

	log.Info("success to list categories", slog.Int("count", len(categories)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"categories": categories,
	}))
}
