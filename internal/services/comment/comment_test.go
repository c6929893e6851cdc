package comment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) CreateComment(ctx context.Context, comment models.Comment) (string, error) {
	args := m.Called(ctx, comment)
	return args.String(0), args.Error(1)
}

func (m *RepositoryMock) GetCommentByUID(ctx context.Context, commentUID string) (*models.Comment, error) {
	args := m.Called(ctx, commentUID)
	if comment, ok := args.Get(0).(*models.Comment); ok {
		return comment, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepositoryMock) ListCommentsByRecipe(ctx context.Context, recipeUID string) ([]*models.CommentWithAuthor, error) {
	args := m.Called(ctx, recipeUID)
	if comments, ok := args.Get(0).([]*models.CommentWithAuthor); ok {
		return comments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepositoryMock) GetRecipeByUID(ctx context.Context, recipeUID string) (*models.Recipe, error) {
	args := m.Called(ctx, recipeUID)
	if recipe, ok := args.Get(0).(*models.Recipe); ok {
		return recipe, args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const recipeUID = "65c8a6a4-9128-4f14-9a5c-31f0ae0b6a84"

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).
			Return(&models.Recipe{ID: recipeUID}, nil)
		repoMock.On("CreateComment", mock.Anything, mock.MatchedBy(func(c models.Comment) bool {
			return c.Content == "Delicious!" &&
				c.RecipeID == recipeUID &&
				c.UserID == "user-uid-1"
		})).Return("comment-uid-1", nil)
		repoMock.On("GetCommentByUID", mock.Anything, "comment-uid-1").
			Return(&models.Comment{
				ID:       "comment-uid-1",
				Content:  "Delicious!",
				RecipeID: recipeUID,
				UserID:   "user-uid-1",
			}, nil)

		service := NewService(repoMock, newNoopLogger())

		comment, err := service.Create(context.Background(), "Delicious!", recipeUID, "user-uid-1")
		require.NoError(t, err)
		assert.Equal(t, "comment-uid-1", comment.ID)
		repoMock.AssertExpectations(t)
	})

	t.Run("recipe not found", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).
			Return(nil, repository.ErrRecipeNotFound)

		service := NewService(repoMock, newNoopLogger())

		comment, err := service.Create(context.Background(), "Delicious!", recipeUID, "user-uid-1")
		assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
		assert.Nil(t, comment)
		repoMock.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})

	t.Run("malformed recipe uid", func(t *testing.T) {
		service := NewService(new(RepositoryMock), newNoopLogger())

		comment, err := service.Create(context.Background(), "Delicious!", "not-a-uuid", "user-uid-1")
		assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
		assert.Nil(t, comment)
	})
}

func TestService_ListByRecipe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("ListCommentsByRecipe", mock.Anything, recipeUID).
			Return([]*models.CommentWithAuthor{
				{
					Comment: models.Comment{ID: "comment-uid-2", Content: "Newest"},
					Author:  models.CommentAuthor{Username: "chefanna", Email: "anna@example.com"},
				},
				{
					Comment: models.Comment{ID: "comment-uid-1", Content: "Oldest"},
					Author:  models.CommentAuthor{Username: "bob", Email: "bob@example.com"},
				},
			}, nil)

		service := NewService(repoMock, newNoopLogger())

		comments, err := service.ListByRecipe(context.Background(), recipeUID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "chefanna", comments[0].Author.Username)
	})

	t.Run("malformed recipe uid", func(t *testing.T) {
		service := NewService(new(RepositoryMock), newNoopLogger())

		comments, err := service.ListByRecipe(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
		assert.Nil(t, comments)
	})
}
