package recipe

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) CreateRecipe(ctx context.Context, recipe models.Recipe) (string, error) {
	args := m.Called(ctx, recipe)
	return args.String(0), args.Error(1)
}

func (m *RepositoryMock) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	if recipes, ok := args.Get(0).([]*models.Recipe); ok {
		return recipes, args.Error(1)
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

func (m *RepositoryMock) UpdateRecipe(ctx context.Context, recipe models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *RepositoryMock) DeleteRecipe(ctx context.Context, recipeUID string) error {
	args := m.Called(ctx, recipeUID)
	return args.Error(0)
}

type UploaderMock struct {
	mock.Mock
}

func (m *UploaderMock) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	args := m.Called(ctx, filename, file)
	return args.String(0), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testUID = "65c8a6a4-9128-4f14-9a5c-31f0ae0b6a84"

func TestService_Create_WithImageAndCategory(t *testing.T) {
	repoMock := new(RepositoryMock)
	uploaderMock := new(UploaderMock)
	cacheMock := new(CacheMock)

	file := strings.NewReader("fake image bytes")
	uploaderMock.On("Upload", mock.Anything, "dish.jpg", file).
		Return("https://cdn.example.com/dish.jpg", nil)

	repoMock.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(r models.Recipe) bool {
		return r.Name == "Pho Bo" &&
			r.ImageURL == "https://cdn.example.com/dish.jpg" &&
			r.Difficulty == models.DifficultyEasy &&
			len(r.Categories) == 1 &&
			r.Categories[0].Name == "Soup" &&
			r.Categories[0].ID != ""
	})).Return(testUID, nil)

	stored := &models.Recipe{ID: testUID, Name: "Pho Bo"}
	repoMock.On("GetRecipeByUID", mock.Anything, testUID).Return(stored, nil)
	cacheMock.On("Set", "recipe:"+testUID, stored, time.Hour).Return(nil)

	service := NewService(repoMock, uploaderMock, cacheMock, newNoopLogger())

	recipe, err := service.Create(context.Background(), CreateInput{
		Name:         "Pho Bo",
		Ingredients:  []string{"beef", "rice noodles"},
		Instructions: "Simmer the broth.",
		CookTime:     "6h",
		Category:     &models.Category{Name: "Soup"},
		Image:        &Image{Filename: "dish.jpg", File: file},
	})
	require.NoError(t, err)
	assert.Equal(t, testUID, recipe.ID)

	repoMock.AssertExpectations(t)
	uploaderMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestService_Create_UploadFailure(t *testing.T) {
	uploaderMock := new(UploaderMock)
	uploaderMock.On("Upload", mock.Anything, "dish.jpg", mock.Anything).
		Return("", assert.AnError)

	repoMock := new(RepositoryMock)
	service := NewService(repoMock, uploaderMock, new(CacheMock), newNoopLogger())

	recipe, err := service.Create(context.Background(), CreateInput{
		Name:         "Pho Bo",
		Ingredients:  []string{"beef"},
		Instructions: "Simmer.",
		CookTime:     "6h",
		Image:        &Image{Filename: "dish.jpg", File: strings.NewReader("bytes")},
	})
	assert.Error(t, err)
	assert.Nil(t, recipe)
	repoMock.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
}

func TestService_GetByID(t *testing.T) {
	t.Run("malformed uid maps to not found", func(t *testing.T) {
		service := NewService(new(RepositoryMock), new(UploaderMock), new(CacheMock), newNoopLogger())

		recipe, err := service.GetByID(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
		assert.Nil(t, recipe)
	})

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		stored := &models.Recipe{ID: testUID, Name: "Pho Bo"}

		cacheMock := new(CacheMock)
		cacheMock.On("Get", "recipe:"+testUID, mock.Anything).Return(false, nil)
		cacheMock.On("Set", "recipe:"+testUID, stored, time.Hour).Return(nil)

		repoMock := new(RepositoryMock)
		repoMock.On("GetRecipeByUID", mock.Anything, testUID).Return(stored, nil)

		service := NewService(repoMock, new(UploaderMock), cacheMock, newNoopLogger())

		recipe, err := service.GetByID(context.Background(), testUID)
		require.NoError(t, err)
		assert.Equal(t, "Pho Bo", recipe.Name)
		repoMock.AssertExpectations(t)
		cacheMock.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		cached := &models.Recipe{ID: testUID, Name: "Pho Bo"}

		cacheMock := new(CacheMock)
		cacheMock.On("Get", "recipe:"+testUID, mock.Anything).
			Run(func(args mock.Arguments) {
				ptr := args.Get(1).(**models.Recipe)
				*ptr = cached
			}).Return(true, nil)

		repoMock := new(RepositoryMock)
		service := NewService(repoMock, new(UploaderMock), cacheMock, newNoopLogger())

		recipe, err := service.GetByID(context.Background(), testUID)
		require.NoError(t, err)
		assert.Equal(t, cached, recipe)
		repoMock.AssertNotCalled(t, "GetRecipeByUID", mock.Anything, mock.Anything)
	})
}

func TestService_Update_PartialFieldsPreserved(t *testing.T) {
	current := &models.Recipe{
		ID:           testUID,
		Name:         "Pho Bo",
		Description:  "Vietnamese soup",
		Ingredients:  []string{"beef", "rice noodles"},
		Instructions: "Simmer the broth.",
		CookTime:     "6h",
		Calories:     450,
		Difficulty:   models.DifficultyMedium,
		ImageURL:     "https://cdn.example.com/old.jpg",
	}

	repoMock := new(RepositoryMock)
	repoMock.On("GetRecipeByUID", mock.Anything, testUID).Return(current, nil)
	repoMock.On("UpdateRecipe", mock.Anything, mock.MatchedBy(func(r models.Recipe) bool {
		return r.Name == "Pho Ga" &&
			r.Description == "Vietnamese soup" &&
			r.CookTime == "6h" &&
			r.Calories == 450 &&
			r.ImageURL == "https://cdn.example.com/old.jpg"
	})).Return(nil)

	cacheMock := new(CacheMock)
	cacheMock.On("Invalidate", "recipe:"+testUID).Return(nil)

	service := NewService(repoMock, new(UploaderMock), cacheMock, newNoopLogger())

	newName := "Pho Ga"
	updated, err := service.Update(context.Background(), testUID, UpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Pho Ga", updated.Name)
	assert.Equal(t, "Vietnamese soup", updated.Description)

	repoMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	repoMock := new(RepositoryMock)
	repoMock.On("GetRecipeByUID", mock.Anything, testUID).
		Return(nil, repository.ErrRecipeNotFound)

	service := NewService(repoMock, new(UploaderMock), new(CacheMock), newNoopLogger())

	newName := "Pho Ga"
	updated, err := service.Update(context.Background(), testUID, UpdateInput{Name: &newName})
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
	assert.Nil(t, updated)
}

func TestService_Delete(t *testing.T) {
	t.Run("success invalidates cache", func(t *testing.T) {
		repoMock := new(RepositoryMock)
		repoMock.On("DeleteRecipe", mock.Anything, testUID).Return(nil)

		cacheMock := new(CacheMock)
		cacheMock.On("Invalidate", "recipe:"+testUID).Return(nil)

		service := NewService(repoMock, new(UploaderMock), cacheMock, newNoopLogger())

		require.NoError(t, service.Delete(context.Background(), testUID))
		repoMock.AssertExpectations(t)
		cacheMock.AssertExpectations(t)
	})

	t.Run("malformed uid maps to not found", func(t *testing.T) {
		service := NewService(new(RepositoryMock), new(UploaderMock), new(CacheMock), newNoopLogger())
		assert.ErrorIs(t, service.Delete(context.Background(), "not-a-uuid"), repository.ErrRecipeNotFound)
	})
}
