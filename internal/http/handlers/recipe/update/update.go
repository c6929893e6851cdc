// Package update реализует HTTP-обработчик частичного обновления рецепта.
//
// Запрос приходит в формате multipart/form-data; меняются только переданные
// поля, новое изображение заменяет imageUrl. Маршрут закрыт JWT и ролью
// admin на уровне middleware.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kitikt/BE-Native/internal/http/response"
	"github.com/kitikt/BE-Native/internal/lib/sl"
	"github.com/kitikt/BE-Native/internal/models"
	recipeservice "github.com/kitikt/BE-Native/internal/services/recipe"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

const maxUploadSize = 10 << 20

// Service описывает интерфейс бизнес-логики обновления рецепта.
type Service interface {
	Update(ctx context.Context, recipeUID string, in recipeservice.UpdateInput) (*models.Recipe, error)
}

// Handler управляет HTTP-запросами на обновление рецептов.
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
// @Summary Обновить рецепт
// @Description Частично обновляет рецепт: меняются только переданные поля. Только для роли admin.
// @Tags Recipes
// @Security BearerAuth
// @Accept  mpfd
// @Produce  json
// @Param id path string true "UID рецепта"
// @Success 200 {object} map[string]any "Обновленный рецепт"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Рецепт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeUID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	in, err := buildInput(r)
	if err != nil {
		log.Error("failed to build update input", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	recipe, err := h.service.Update(r.Context(), recipeUID, in)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			log.Error("recipe not found", slog.String("uid", recipeUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to update recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update recipe"))
		return
	}

	log.Info("success to update recipe", slog.String("uid", recipe.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"recipe": recipe,
	}))
}

// buildInput собирает частичное обновление: в UpdateInput попадают только
// поля, присутствующие в форме.
func buildInput(r *http.Request) (recipeservice.UpdateInput, error) {
	var in recipeservice.UpdateInput

	if _, ok := r.PostForm["name"]; ok {
		v := r.FormValue("name")
		in.Name = &v
	}
	if _, ok := r.PostForm["description"]; ok {
		v := r.FormValue("description")
		in.Description = &v
	}
	if _, ok := r.PostForm["ingredients"]; ok {
		in.Ingredients = r.PostForm["ingredients"]
	}
	if _, ok := r.PostForm["instructions"]; ok {
		v := r.FormValue("instructions")
		in.Instructions = &v
	}
	if _, ok := r.PostForm["cookTime"]; ok {
		v := r.FormValue("cookTime")
		in.CookTime = &v
	}
	if _, ok := r.PostForm["calories"]; ok {
		calories, err := strconv.Atoi(r.FormValue("calories"))
		if err != nil {
			return in, errors.New("calories must be a number")
		}
		in.Calories = &calories
	}
	if _, ok := r.PostForm["difficulty"]; ok {
		v := r.FormValue("difficulty")
		if !models.ValidDifficulty(v) {
			return in, errors.New("unsupported difficulty")
		}
		in.Difficulty = &v
	}
	if file, header, err := r.FormFile("image"); err == nil {
		in.Image = &recipeservice.Image{
			Filename: header.Filename,
			File:     file,
		}
	}
	return in, nil
}
