package update

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kitikt/BE-Native/internal/models"
	recipeservice "github.com/kitikt/BE-Native/internal/services/recipe"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Update(ctx context.Context, recipeUID string, in recipeservice.UpdateInput) (*models.Recipe, error) {
	args := m.Called(ctx, recipeUID, in)
	if recipe, ok := args.Get(0).(*models.Recipe); ok {
		return recipe, args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const recipeUID = "65c8a6a4-9128-4f14-9a5c-31f0ae0b6a84"

func buildForm(t *testing.T, fields map[string][]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, values := range fields {
		for _, value := range values {
			require.NoError(t, writer.WriteField(name, value))
		}
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name           string
		fields         map[string][]string
		setupMock      func(m *ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "only name updated",
			fields: map[string][]string{"name": {"Pho Ga"}},
			setupMock: func(m *ServiceMock) {
				m.On("Update", mock.Anything, recipeUID,
					mock.MatchedBy(func(in recipeservice.UpdateInput) bool {
						return in.Name != nil && *in.Name == "Pho Ga" &&
							in.Description == nil &&
							in.Ingredients == nil &&
							in.Calories == nil
					})).Return(&models.Recipe{ID: recipeUID, Name: "Pho Ga"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Pho Ga"`,
		},
		{
			name: "ingredients replaced wholesale",
			fields: map[string][]string{
				"ingredients": {"chicken", "rice noodles"},
				"calories":    {"400"},
			},
			setupMock: func(m *ServiceMock) {
				m.On("Update", mock.Anything, recipeUID,
					mock.MatchedBy(func(in recipeservice.UpdateInput) bool {
						return len(in.Ingredients) == 2 &&
							in.Calories != nil && *in.Calories == 400 &&
							in.Name == nil
					})).Return(&models.Recipe{ID: recipeUID, Name: "Pho Bo"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"` + recipeUID + `"`,
		},
		{
			name:           "calories not a number",
			fields:         map[string][]string{"calories": {"many"}},
			setupMock:      func(m *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "calories must be a number",
		},
		{
			name:           "unsupported difficulty",
			fields:         map[string][]string{"difficulty": {"Impossible"}},
			setupMock:      func(m *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "unsupported difficulty",
		},
		{
			name:   "recipe not found",
			fields: map[string][]string{"name": {"Pho Ga"}},
			setupMock: func(m *ServiceMock) {
				m.On("Update", mock.Anything, recipeUID, mock.Anything).
					Return(nil, repository.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "recipe not found",
		},
		{
			name:   "internal error",
			fields: map[string][]string{"name": {"Pho Ga"}},
			setupMock: func(m *ServiceMock) {
				m.On("Update", mock.Anything, recipeUID, mock.Anything).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not update recipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMock(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			body, contentType := buildForm(t, tt.fields)
			req := httptest.NewRequest(http.MethodPut, "/api/recipes/"+recipeUID, body)
			req.Header.Set("Content-Type", contentType)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", recipeUID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			serviceMock.AssertExpectations(t)
		})
	}
}
