// Package suggest реализует HTTP-обработчик AI-подсказок рецептов.
//
// Handler принимает список ингредиентов свободным текстом и возвращает ответ
// внешней генеративной модели. Сбой внешнего сервиса не превращается в ошибку
// HTTP: маршрут отвечает 200 с запасным текстом, ошибкой считается только
// некорректный ввод.
package suggest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
)

// Request — входные данные: список ингредиентов свободным текстом.
type Request struct {
	Message string `json:"message" validate:"required,min=1,max=1000"`
}

// Service описывает интерфейс бизнес-логики AI-подсказок.
type Service interface {
	Suggest(ctx context.Context, message string) string
}

// Handler обрабатывает запросы AI-подсказок.
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
// @Summary Подсказка блюд по ингредиентам
// @Description Передает список ингредиентов внешней генеративной модели и возвращает ее ответ.
// @Tags AI
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Список ингредиентов"
// @Success 200 {object} map[string]any "Ответ модели или запасной текст"
// @Failure 400 {object} response.ErrorResponse "Отсутствует message"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /ai/suggest [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.suggest"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("please provide a valid message"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("please provide a valid message"))
		return
	}

	reply := h.service.Suggest(r.Context(), req.Message)

	log.Info("success to get ai suggestion")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"reply": reply,
	}))
}
