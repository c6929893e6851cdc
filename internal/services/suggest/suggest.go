// Package suggest содержит бизнес-логику AI-подсказок: сборку prompt из
// списка ингредиентов и мягкую деградацию при недоступности внешнего сервиса.
package suggest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kitikt/BE-Native/internal/lib/sl"
)

// FallbackReply возвращается, когда внешний сервис недоступен или прислал
// некорректный ответ. Ошибка вызова логируется, но наружу не поднимается:
// маршрут всегда отвечает текстом.
const FallbackReply = "The AI assistant is not available right now. Please try again later."

const promptTemplate = "I have the following ingredients: %s. " +
	"Can you suggest some suitable dishes I can cook with them? Please respond in English."

// AIClient описывает клиент внешнего генеративного сервиса.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service реализует AI-подсказки рецептов.
type Service struct {
	client AIClient
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(client AIClient, log *slog.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// Suggest формирует prompt из списка ингредиентов пользователя и возвращает
// ответ модели. При любой ошибке вызова возвращается FallbackReply.
func (s *Service) Suggest(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(promptTemplate, message)

	reply, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.log.Error("ai suggestion call failed", sl.Err(err))
		return FallbackReply
	}
	return reply
}
