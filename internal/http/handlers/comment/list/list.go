// Package list реализует HTTP-обработчик выдачи комментариев рецепта.
// Маршрут открытый; комментарии возвращаются вместе с минимальными данными
// автора (username, email), новые первыми.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
)

// Service описывает интерфейс бизнес-логики выдачи комментариев.
type Service interface {
	ListByRecipe(ctx context.Context, recipeUID string) ([]*models.CommentWithAuthor, error)
}

// Handler обрабатывает запросы на получение комментариев рецепта.
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
// @Summary Комментарии рецепта
// @Tags Comments
// @Produce  json
// @Param recipeId path string true "UID рецепта"
// @Success 200 {object} map[string]any "Комментарии с данными авторов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /comments/{recipeId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "recipeId")

	comments, err := h.service.ListByRecipe(r.Context(), recipeUID)
	if err != nil {
		log.Error("failed to list comments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list comments"))
		return
	}

	log.Info("success to list comments", slog.Int("count", len(comments)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"comments": comments,
	}))
}
