// Package remove реализует HTTP-обработчик удаления категории из рецепта.
// Маршрут закрыт JWT и ролью admin.
package remove

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
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики удаления категории.
type Service interface {
	Remove(ctx context.Context, recipeUID, categoryUID string) error
}

// Handler обрабатывает запросы на удаление категории.
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
// @Summary Удалить категорию рецепта
// @Tags Categories
// @Security BearerAuth
// @Produce  json
// @Param id path string true "UID рецепта"
// @Param categoryId path string true "UID категории"
// @Success 200 {object} map[string]any "Подтверждение удаления"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Рецепт или категория не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id}/categories/{categoryId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "id")
	categoryUID := chi.URLParam(r, "categoryId")

	if err := h.service.Remove(r.Context(), recipeUID, categoryUID); err != nil {
		switch {
		case errors.Is(err, repository.ErrRecipeNotFound):
			log.Error("recipe not found", slog.String("uid", recipeUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
		case errors.Is(err, repository.ErrCategoryNotFound):
			log.Error("category not found", slog.String("uid", categoryUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
		default:
			log.Error("failed to remove category", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not remove category"))
		}
		return
	}

	log.Info("success to remove category", slog.String("uid", categoryUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "category deleted",
	}))
}
