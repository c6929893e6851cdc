package register

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kitikt/BE-Native/internal/models"
	"github.com/kitikt/BE-Native/internal/storage/repository"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, username, email, password string) (string, *models.PublicUser, error) {
	args := m.Called(ctx, username, email, password)
	var user *models.PublicUser
	if u, ok := args.Get(1).(*models.PublicUser); ok {
		user = u
	}
	return args.String(0), user, args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"username":"chefanna","email":"anna@example.com","password":"secret123"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "chefanna", "anna@example.com", "secret123").
					Return("jwt-token", &models.PublicUser{
						ID:       "uid-1",
						Username: "chefanna",
						Email:    "anna@example.com",
						Role:     "user",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"token":"jwt-token"`,
		},
		{
			name:           "invalid json",
			body:           `{"username":`,
			setupMock:      func(m *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "missing email",
			body:           `{"username":"chefanna","password":"secret123"}`,
			setupMock:      func(m *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Email is a required field",
		},
		{
			name:           "password too short",
			body:           `{"username":"chefanna","email":"anna@example.com","password":"123"}`,
			setupMock:      func(m *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "error",
		},
		{
			name: "duplicate user",
			body: `{"username":"chefanna","email":"anna@example.com","password":"secret123"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "chefanna", "anna@example.com", "secret123").
					Return("", nil, repository.ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "username or email already exists",
		},
		{
			name: "internal error",
			body: `{"username":"chefanna","email":"anna@example.com","password":"secret123"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "chefanna", "anna@example.com", "secret123").
					Return("", nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMock(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			serviceMock.AssertExpectations(t)
		})
	}
}
