// Package create реализует HTTP-обработчик создания рецепта.
//
// Запрос приходит в формате multipart/form-data: текстовые поля рецепта,
// опциональный файл изображения (поле image) и опциональная категория
// (поле category, JSON-строка). Изображение загружается во внешнее хранилище
// до записи рецепта; некорректный JSON категории — ошибка 400.
// Маршрут закрыт JWT и ролью admin на уровне middleware.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
	recipeservice "github.com/kitikt/BE-Native/internal/services/recipe"
)

// maxUploadSize ограничивает размер multipart-запроса.
const maxUploadSize = 10 << 20

// Request — текстовые поля нового рецепта из multipart-формы.
type Request struct {
	Name         string   `validate:"required,min=2,max=100"`
	Description  string   `validate:"max=2000"`
	Ingredients  []string `validate:"required,min=1,dive,required"`
	Instructions string   `validate:"required"`
	CookTime     string   `validate:"required"`
	Calories     int      `validate:"gte=0"`
	Difficulty   string   `validate:"omitempty,oneof=Easy Medium Hard"`
}

// Service описывает интерфейс бизнес-логики создания рецепта.
type Service interface {
	Create(ctx context.Context, in recipeservice.CreateInput) (*models.Recipe, error)
}

// Handler управляет HTTP-запросами на создание рецептов.
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
// @Summary Создать новый рецепт
// @Description Создает рецепт с опциональным изображением и категорией. Только для роли admin.
// @Tags Recipes
// @Security BearerAuth
// @Accept  mpfd
// @Produce  json
// @Success 201 {object} map[string]any "Созданный рецепт"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма или категория"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	calories, err := parseCalories(r.FormValue("calories"))
	if err != nil {
		log.Error("failed to parse calories", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("calories must be a number"))
		return
	}

	req := Request{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		Ingredients:  r.PostForm["ingredients"],
		Instructions: r.FormValue("instructions"),
		CookTime:     r.FormValue("cookTime"),
		Calories:     calories,
		Difficulty:   r.FormValue("difficulty"),
	}
	log.Info("form decoded", slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	var category *models.Category
	if raw := r.FormValue("category"); raw != "" {
		category = &models.Category{}
		if err := json.Unmarshal([]byte(raw), category); err != nil {
			log.Error("failed to parse category payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid category payload"))
			return
		}
	}

	in := recipeservice.CreateInput{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookTime:     req.CookTime,
		Calories:     req.Calories,
		Difficulty:   req.Difficulty,
		Category:     category,
	}
	if file, header, err := r.FormFile("image"); err == nil {
		defer func() {
			_ = file.Close()
		}()
		in.Image = &recipeservice.Image{
			Filename: header.Filename,
			File:     file,
		}
	}

	recipe, err := h.service.Create(r.Context(), in)
	if err != nil {
		log.Error("failed to create recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create recipe"))
		return
	}

	log.Info("success to create recipe", slog.String("uid", recipe.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"recipe": recipe,
	}))
}

func parseCalories(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
