// Package remove реализует HTTP-обработчик удаления рецепта.
// Вместе с рецептом исчезают его встроенные категории, комментарии
// удаляются каскадно. Маршрут закрыт JWT и ролью admin.
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

// Service описывает интерфейс бизнес-логики удаления рецепта.
type Service interface {
	Delete(ctx context.Context, recipeUID string) error
}

// Handler обрабатывает запросы на удаление рецепта.
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
// @Summary Удалить рецепт
// @Tags Recipes
// @Security BearerAuth
// @Produce  json
// @Param id path string true "UID рецепта"
// @Success 200 {object} map[string]any "Подтверждение удаления"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), recipeUID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			log.Error("recipe not found", slog.String("uid", recipeUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to delete recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete recipe"))
		return
	}

	log.Info("success to delete recipe", slog.String("uid", recipeUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "recipe deleted",
	}))
}
