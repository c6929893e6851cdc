// Package category содержит бизнес-логику работы со встроенными категориями
// рецептов: добавление, частичное обновление, удаление и сводный список.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Repository определяет методы хранилища, нужные для работы с категориями.
type Repository interface {
	// GetRecipeByUID возвращает рецепт по UID.
	GetRecipeByUID(ctx context.Context, recipeUID string) (*models.Recipe, error)
	// ListRecipes возвращает все рецепты.
	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
	// UpdateRecipeCategories перезаписывает категории рецепта.
	UpdateRecipeCategories(ctx context.Context, recipeUID string, categories []models.Category) error
}

// Cache описывает инвалидацию кеша рецептов: мутация категорий меняет рецепт.
type Cache interface {
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с категориями.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ListAll собирает категории по всем рецептам и дедуплицирует их по имени:
// первая встреченная категория с данным именем выигрывает, привязка к рецепту
// отбрасывается. Поведение перенесено из исходного продукта как есть, включая
// ErrRecipeNotFound при полном отсутствии рецептов (а не категорий).
func (s *Service) ListAll(ctx context.Context) ([]models.Category, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, repository.ErrRecipeNotFound
	}

	seen := make(map[string]struct{})
	var result []models.Category
	for _, recipe := range recipes {
		for _, category := range recipe.Categories {
			if _, ok := seen[category.Name]; ok {
				continue
			}
			seen[category.Name] = struct{}{}
			result = append(result, category)
		}
	}
	return result, nil
}

// Add добавляет категорию к рецепту и возвращает обновленный список категорий.
func (s *Service) Add(ctx context.Context, recipeUID, name, description string) ([]models.Category, error) {
	recipe, err := s.getRecipe(ctx, recipeUID)
	if err != nil {
		return nil, err
	}

	categories := append(recipe.Categories, models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	})
	if err := s.repo.UpdateRecipeCategories(ctx, recipeUID, categories); err != nil {
		return nil, err
	}
	s.log.Info("added category to recipe",
		slog.String("recipe_uid", recipeUID), slog.String("name", name))
	s.invalidate(recipeUID)
	return categories, nil
}

// Update частично обновляет категорию рецепта: меняются только переданные поля.
func (s *Service) Update(ctx context.Context, recipeUID, categoryUID string, name, description *string) (*models.Category, error) {
	recipe, err := s.getRecipe(ctx, recipeUID)
	if err != nil {
		return nil, err
	}

	categories := recipe.Categories
	idx := indexOf(categories, categoryUID)
	if idx < 0 {
		return nil, repository.ErrCategoryNotFound
	}
	if name != nil {
		categories[idx].Name = *name
	}
	if description != nil {
		categories[idx].Description = *description
	}

	if err := s.repo.UpdateRecipeCategories(ctx, recipeUID, categories); err != nil {
		return nil, err
	}
	s.invalidate(recipeUID)
	return &categories[idx], nil
}

// Remove удаляет категорию из рецепта.
func (s *Service) Remove(ctx context.Context, recipeUID, categoryUID string) error {
	recipe, err := s.getRecipe(ctx, recipeUID)
	if err != nil {
		return err
	}

	categories := recipe.Categories
	idx := indexOf(categories, categoryUID)
	if idx < 0 {
		return repository.ErrCategoryNotFound
	}
	categories = append(categories[:idx], categories[idx+1:]...)

	if err := s.repo.UpdateRecipeCategories(ctx, recipeUID, categories); err != nil {
		return err
	}
	s.log.Info("removed category from recipe",
		slog.String("recipe_uid", recipeUID), slog.String("category_uid", categoryUID))
	s.invalidate(recipeUID)
	return nil
}

func (s *Service) getRecipe(ctx context.Context, recipeUID string) (*models.Recipe, error) {
	if _, err := uuid.Parse(recipeUID); err != nil {
		return nil, repository.ErrRecipeNotFound
	}
	return s.repo.GetRecipeByUID(ctx, recipeUID)
}

func (s *Service) invalidate(recipeUID string) {
	cacheKey := fmt.Sprintf("recipe:%s", recipeUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func indexOf(categories []models.Category, categoryUID string) int {
	for i, category := range categories {
		if category.ID == categoryUID {
			return i
		}
	}
	return -1
}
