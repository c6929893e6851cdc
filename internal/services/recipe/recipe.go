// Package recipe содержит бизнес-логику работы с рецептами: создание
// с загрузкой изображения во внешнее хранилище, частичное обновление,
// чтение через кеш и удаление.
package recipe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Repository определяет методы для работы с рецептами в хранилище.
type Repository interface {
	// CreateRecipe добавляет новый рецепт и возвращает его UID.
	CreateRecipe(ctx context.Context, recipe models.Recipe) (string, error)
	// ListRecipes возвращает все рецепты.
	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
	// GetRecipeByUID возвращает рецепт по UID.
	GetRecipeByUID(ctx context.Context, recipeUID string) (*models.Recipe, error)
	// UpdateRecipe перезаписывает рецепт целиком.
	UpdateRecipe(ctx context.Context, recipe models.Recipe) error
	// DeleteRecipe удаляет рецепт по UID.
	DeleteRecipe(ctx context.Context, recipeUID string) error
}

// Uploader загружает изображение во внешнее хранилище и возвращает URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Image — содержимое загружаемого изображения.
type Image struct {
	Filename string
	File     io.Reader
}

// CreateInput — поля нового рецепта. Category и Image опциональны.
type CreateInput struct {
	Name         string
	Description  string
	Ingredients  []string
	Instructions string
	CookTime     string
	Calories     int
	Difficulty   string
	Category     *models.Category
	Image        *Image
}

// UpdateInput — частичное обновление: меняются только непустые указатели.
type UpdateInput struct {
	Name         *string
	Description  *string
	Ingredients  []string
	Instructions *string
	CookTime     *string
	Calories     *int
	Difficulty   *string
	Image        *Image
}

// Service реализует бизнес-логику работы с рецептами.
type Service struct {
	repo     Repository
	uploader Uploader
	cache    Cache
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, uploader Uploader, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
		log:      log,
	}
}

// Create создает новый рецепт. Если приложено изображение, оно сначала
// загружается во внешнее хранилище, и в рецепте сохраняется полученный URL.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Recipe, error) {
	var imageURL string
	if in.Image != nil {
		url, err := s.uploader.Upload(ctx, in.Image.Filename, in.Image.File)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	if in.Difficulty == "" {
		in.Difficulty = models.DifficultyEasy
	}

	categories := []models.Category{}
	if in.Category != nil {
		category := *in.Category
		if category.ID == "" {
			category.ID = uuid.NewString()
		}
		categories = append(categories, category)
	}

	recipe := models.Recipe{
		Name:         in.Name,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		CookTime:     in.CookTime,
		Calories:     in.Calories,
		ImageURL:     imageURL,
		Difficulty:   in.Difficulty,
		Categories:   categories,
	}

	uid, err := s.repo.CreateRecipe(ctx, recipe)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new recipe", slog.String("uid", uid))

	stored, err := s.repo.GetRecipeByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("recipe:%s", uid)
	if err := s.cache.Set(cacheKey, stored, time.Hour); err != nil {
		s.log.Warn("failed to cache recipe", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return stored, nil
}

// List возвращает все рецепты без пагинации и фильтров.
func (s *Service) List(ctx context.Context) ([]*models.Recipe, error) {
	return s.repo.ListRecipes(ctx)
}

// GetByID возвращает рецепт по UID, используя кеш или репозиторий.
func (s *Service) GetByID(ctx context.Context, recipeUID string) (*models.Recipe, error) {
	if _, err := uuid.Parse(recipeUID); err != nil {
		return nil, repository.ErrRecipeNotFound
	}

	var result *models.Recipe
	cacheKey := fmt.Sprintf("recipe:%s", recipeUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.GetRecipeByUID(ctx, recipeUID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update частично обновляет рецепт: переданные поля заменяют текущие,
// остальные сохраняются. Новое изображение заменяет imageUrl.
func (s *Service) Update(ctx context.Context, recipeUID string, in UpdateInput) (*models.Recipe, error) {
	if _, err := uuid.Parse(recipeUID); err != nil {
		return nil, repository.ErrRecipeNotFound
	}

	current, err := s.repo.GetRecipeByUID(ctx, recipeUID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		current.Name = *in.Name
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.Ingredients != nil {
		current.Ingredients = in.Ingredients
	}
	if in.Instructions != nil {
		current.Instructions = *in.Instructions
	}
	if in.CookTime != nil {
		current.CookTime = *in.CookTime
	}
	if in.Calories != nil {
		current.Calories = *in.Calories
	}
	if in.Difficulty != nil {
		current.Difficulty = *in.Difficulty
	}
	if in.Image != nil {
		url, err := s.uploader.Upload(ctx, in.Image.Filename, in.Image.File)
		if err != nil {
			return nil, err
		}
		current.ImageURL = url
	}

	if err := s.repo.UpdateRecipe(ctx, *current); err != nil {
		return nil, err
	}
	s.log.Info("updated recipe", slog.String("uid", recipeUID))

	cacheKey := fmt.Sprintf("recipe:%s", recipeUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return current, nil
}

// Delete удаляет рецепт по UID и инвалидирует кеш.
func (s *Service) Delete(ctx context.Context, recipeUID string) error {
	if _, err := uuid.Parse(recipeUID); err != nil {
		return repository.ErrRecipeNotFound
	}

	cacheKey := fmt.Sprintf("recipe:%s", recipeUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return s.repo.DeleteRecipe(ctx, recipeUID)
}
