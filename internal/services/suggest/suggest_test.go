package suggest

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AIClientMock struct {
	mock.Mock
}

func (m *AIClientMock) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Suggest(t *testing.T) {
	clientMock := new(AIClientMock)
	clientMock.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "chicken, rice, lime")
	})).Return("Try making arroz con pollo.", nil)

	service := NewService(clientMock, newNoopLogger())

	reply := service.Suggest(context.Background(), "chicken, rice, lime")
	assert.Equal(t, "Try making arroz con pollo.", reply)
	clientMock.AssertExpectations(t)
}

func TestService_Suggest_UpstreamFailure(t *testing.T) {
	clientMock := new(AIClientMock)
	clientMock.On("GenerateContent", mock.Anything, mock.Anything).
		Return("", assert.AnError)

	service := NewService(clientMock, newNoopLogger())

	reply := service.Suggest(context.Background(), "chicken, rice, lime")
	assert.Equal(t, FallbackReply, reply)
}
