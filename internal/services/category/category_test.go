package category

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

func (m *RepositoryMock) GetRecipeByUID(ctx context.Context, recipeUID string) (*models.Recipe, error) {
	args := m.Called(ctx, recipeUID)
	if recipe, ok := args.Get(0).(*models.Recipe); ok {
		return recipe, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepositoryMock) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	if recipes, ok := args.Get(0).([]*models.Recipe); ok {
		return recipes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepositoryMock) UpdateRecipeCategories(ctx context.Context, recipeUID string, categories []models.Category) error {
	args := m.Called(ctx, recipeUID, categories)
	return args.Error(0)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const (
	recipeUID   = "65c8a6a4-9128-4f14-9a5c-31f0ae0b6a84"
	categoryUID = "b3a1f1a0-4f44-4c61-b5b3-2f4c0de1a001"
)

func TestService_ListAll(t *testing.T) {
	t.Run("deduplicates by name, first wins", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("ListRecipes", mock.Anything).Return([]*models.Recipe{
			{
				ID: "recipe-1",
				Categories: []models.Category{
					{ID: "cat-1", Name: "Dessert", Description: "Sweet things"},
					{ID: "cat-2", Name: "Italian"},
				},
			},
			{
				ID: "recipe-2",
				Categories: []models.Category{
					{ID: "cat-3", Name: "Dessert", Description: "Another dessert"},
				},
			},
		}, nil)

		service := NewService(repoMock, new(CacheMock), newNoopLogger())

		categories, err := service.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "cat-1", categories[0].ID)
		assert.Equal(t, "Dessert", categories[0].Name)
		assert.Equal(t, "Sweet things", categories[0].Description)
		assert.Equal(t, "Italian", categories[1].Name)
	})

	t.Run("no recipes at all", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("ListRecipes", mock.Anything).Return([]*models.Recipe{}, nil)

		service := NewService(repoMock, new(CacheMock), newNoopLogger())

		categories, err := service.ListAll(context.Background())
		assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
		assert.Nil(t, categories)
	})

	t.Run("recipes without categories give empty list", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("ListRecipes", mock.Anything).Return([]*models.Recipe{
			{ID: "recipe-1", Categories: []models.Category{}},
		}, nil)

		service := NewService(repoMock, new(CacheMock), newNoopLogger())

		categories, err := service.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestService_Add(t *testing.T) {
	repoMock := new(RepositoryMock)
	repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).Return(&models.Recipe{
		ID: recipeUID,
		Categories: []models.Category{
			{ID: categoryUID, Name: "Soup"},
		},
	}, nil)
	repoMock.On("UpdateRecipeCategories", mock.Anything, recipeUID,
		mock.MatchedBy(func(categories []models.Category) bool {
			return len(categories) == 2 &&
				categories[1].Name == "Dessert" &&
				categories[1].ID != ""
		})).Return(nil)

	cacheMock := new(CacheMock)
	cacheMock.On("Invalidate", "recipe:"+recipeUID).Return(nil)

	service := NewService(repoMock, cacheMock, newNoopLogger())

	categories, err := service.Add(context.Background(), recipeUID, "Dessert", "Sweet things")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Dessert", categories[1].Name)

	repoMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestService_Add_RecipeNotFound(t *testing.T) {
	repoMock := new(RepositoryMock)
	repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).
		Return(nil, repository.ErrRecipeNotFound)

	service := NewService(repoMock, new(CacheMock), newNoopLogger())

	categories, err := service.Add(context.Background(), recipeUID, "Dessert", "")
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
	assert.Nil(t, categories)
}

func TestService_Update(t *testing.T) {
	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).Return(&models.Recipe{
			ID: recipeUID,
			Categories: []models.Category{
				{ID: categoryUID, Name: "Soup", Description: "Hot dishes"},
			},
		}, nil)
		repoMock.On("UpdateRecipeCategories", mock.Anything, recipeUID,
			mock.MatchedBy(func(categories []models.Category) bool {
				return len(categories) == 1 &&
					categories[0].Name == "Broth" &&
					categories[0].Description == "Hot dishes"
			})).Return(nil)

		cacheMock := new(CacheMock)
		cacheMock.On("Invalidate", "recipe:"+recipeUID).Return(nil)

		service := NewService(repoMock, cacheMock, newNoopLogger())

		newName := "Broth"
		category, err := service.Update(context.Background(), recipeUID, categoryUID, &newName, nil)
		require.NoError(t, err)
		assert.Equal(t, "Broth", category.Name)
		assert.Equal(t, "Hot dishes", category.Description)
		repoMock.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).Return(&models.Recipe{
			ID:         recipeUID,
			Categories: []models.Category{},
		}, nil)

		service := NewService(repoMock, new(CacheMock), newNoopLogger())

		newName := "Broth"
		category, err := service.Update(context.Background(), recipeUID, categoryUID, &newName, nil)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
		assert.Nil(t, category)
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).Return(&models.Recipe{
			ID: recipeUID,
			Categories: []models.Category{
				{ID: categoryUID, Name: "Soup"},
				{ID: "other-category", Name: "Dinner"},
			},
		}, nil)
		repoMock.On("UpdateRecipeCategories", mock.Anything, recipeUID,
			mock.MatchedBy(func(categories []models.Category) bool {
				return len(categories) == 1 && categories[0].ID == "other-category"
			})).Return(nil)

		cacheMock := new(CacheMock)
		cacheMock.On("Invalidate", "recipe:"+recipeUID).Return(nil)

		service := NewService(repoMock, cacheMock, newNoopLogger())

		require.NoError(t, service.Remove(context.Background(), recipeUID, categoryUID))
		repoMock.AssertExpectations(t)
		cacheMock.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, recipeUID).Return(&models.Recipe{
			ID:         recipeUID,
			Categories: []models.Category{{ID: "other-category", Name: "Dinner"}},
		}, nil)

		service := NewService(repoMock, new(CacheMock), newNoopLogger())

		err := service.Remove(context.Background(), recipeUID, categoryUID)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("malformed recipe uid", func(t *testing.T) {
		service := NewService(new(RepositoryMock), new(CacheMock), newNoopLogger())

		err := service.Remove(context.Background(), "not-a-uuid", categoryUID)
		assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
	})
}
