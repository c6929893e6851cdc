// Package list реализует HTTP-обработчик выдачи всех рецептов.
// Маршрут открытый: пагинации и фильтров нет, порядок — естественный
// порядок хранения.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
)

// Service описывает интерфейс бизнес-логики выдачи рецептов.
type Service interface {
	List(ctx context.Context) ([]*models.Recipe, error)
}

// Handler обрабатывает запросы на получение списка рецептов.
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
// @Summary Список всех рецептов
// @Tags Recipes
// @Produce  json
// @Success 200 {object} map[string]any "Список рецептов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipes, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list recipes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list recipes"))
		return
	}

	log.Info("success to list recipes", slog.Int("count", len(recipes)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"recipes": recipes,
	}))
}
