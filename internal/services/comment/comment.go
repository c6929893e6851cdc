// Package comment содержит бизнес-логику комментариев: создание с проверкой
// существования рецепта и выдача списка по рецепту вместе с данными автора.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

// Repository определяет методы хранилища, нужные сервису комментариев.
type Repository interface {
	// CreateComment сохраняет комментарий и возвращает его UID.
	CreateComment(ctx context.Context, comment models.Comment) (string, error)
	// GetCommentByUID возвращает комментарий по UID.
	GetCommentByUID(ctx context.Context, commentUID string) (*models.Comment, error)
	// ListCommentsByRecipe возвращает комментарии рецепта, новые первыми.
	ListCommentsByRecipe(ctx context.Context, recipeUID string) ([]*models.CommentWithAuthor, error)
	// GetRecipeByUID возвращает рецепт по UID.
	GetRecipeByUID(ctx context.Context, recipeUID string) (*models.Recipe, error)
}

// Service реализует бизнес-логику комментариев.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет комментарий аутентифицированного пользователя.
// Рецепт проверяется до записи: комментарий к несуществующему рецепту
// невозможен.
func (s *Service) Create(ctx context.Context, content, recipeUID, userUID string) (*models.Comment, error) {
	if _, err := uuid.Parse(recipeUID); err != nil {
		return nil, repository.ErrRecipeNotFound
	}
	if _, err := s.repo.GetRecipeByUID(ctx, recipeUID); err != nil {
		return nil, err
	}

	newUID, err := s.repo.CreateComment(ctx, models.Comment{
		Content:  content,
		RecipeID: recipeUID,
		UserID:   userUID,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("created new comment",
		slog.String("uid", newUID), slog.String("recipe_uid", recipeUID))

	return s.repo.GetCommentByUID(ctx, newUID)
}

// ListByRecipe возвращает комментарии рецепта с данными автора.
func (s *Service) ListByRecipe(ctx context.Context, recipeUID string) ([]*models.CommentWithAuthor, error) {
	if _, err := uuid.Parse(recipeUID); err != nil {
		return nil, repository.ErrRecipeNotFound
	}
	return s.repo.ListCommentsByRecipe(ctx, recipeUID)
}
