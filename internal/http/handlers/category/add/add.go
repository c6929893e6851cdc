// Package add реализует HTTP-обработчик добавления категории к рецепту.
// Категория создается только внутри существующего рецепта; имя обязательно.
// Маршрут закрыт JWT и ролью admin.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Request — входные данные новой категории.
type Request struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// Service описывает интерфейс бизнес-логики добавления категории.
type Service interface {
	Add(ctx context.Context, recipeUID, name, description string) ([]models.Category, error)
}

// Handler обрабатывает запросы на добавление категории.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить категорию к рецепту
// @Tags Categories
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "UID рецепта"
// @Param request body Request true "Данные категории"
// @Success 201 {object} map[string]any "Категории рецепта после добавления"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или пустое имя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id}/categories [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	categories, err := h.service.Add(r.Context(), recipeUID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			log.Error("recipe not found", slog.String("uid", recipeUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to add category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add category"))
		return
	}

	log.Info("success to add category", slog.String("recipe_uid", recipeUID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"categories": categories,
	}))
}
