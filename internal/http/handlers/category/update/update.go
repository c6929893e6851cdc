// Package update реализует HTTP-обработчик частичного обновления категории
// рецепта: меняются только явно переданные поля. Маршрут закрыт JWT
// и ролью admin.
package update

import (
	"context"
	"encoding/json"
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

// Request — частичное обновление: nil-поле не меняет категорию.
type Request struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Service описывает интерфейс бизнес-логики обновления категории.
type Service interface {
	Update(ctx context.Context, recipeUID, categoryUID string, name, description *string) (*models.Category, error)
}

// Handler обрабатывает запросы на обновление категории.
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
// @Summary Обновить категорию рецепта
// @Tags Categories
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "UID рецепта"
// @Param categoryId path string true "UID категории"
// @Param request body Request true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновленная категория"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Рецепт или категория не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id}/categories/{categoryId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "id")
	categoryUID := chi.URLParam(r, "categoryId")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	category, err := h.service.Update(r.Context(), recipeUID, categoryUID, req.Name, req.Description)
	if err != nil {
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
			log.Error("failed to update category", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update category"))
		}
		return
	}

	log.Info("success to update category", slog.String("uid", category.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"category": category,
	}))
}
