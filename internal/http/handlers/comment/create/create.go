// Package create реализует HTTP-обработчик создания комментария.
//
// Handler принимает JSON с recipeId и content, берет идентификатор автора
// из контекста (его кладет JWT middleware) и делегирует создание сервису.
// Комментарий к несуществующему рецепту отклоняется.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kitikt/BE-Native/internal/http/middlewarectx"
	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Request — входные данные нового комментария.
type Request struct {
	RecipeID string `json:"recipeId" validate:"required"`
	Content  string `json:"content" validate:"required,min=1,max=2000"`
}

// Service описывает интерфейс бизнес-логики создания комментария.
type Service interface {
	Create(ctx context.Context, content, recipeUID, userUID string) (*models.Comment, error)
}

// Handler обрабатывает запросы на создание комментария.
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
// @Summary Создать комментарий
// @Description Создает комментарий текущего пользователя к существующему рецепту.
// @Tags Comments
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные комментария"
// @Success 201 {object} map[string]any "Созданный комментарий"
// @Failure 400 {object} response.ErrorResponse "Отсутствует content или recipeId"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("recipe_uid", req.RecipeID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	comment, err := h.service.Create(r.Context(), req.Content, req.RecipeID, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			log.Error("recipe not found", slog.String("uid", req.RecipeID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to create comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create comment"))
		return
	}

	log.Info("success to create comment", slog.String("uid", comment.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"comment": comment,
	}))
}
