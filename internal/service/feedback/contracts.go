package feedback

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// FeedbackAPI интерфейс клиента API бронирований для отзывов
type FeedbackAPI interface {
	ListFeedback(ctx context.Context, sess *reservationapi.Session, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	CreateFeedback(ctx context.Context, in domain.FeedbackInput) (*domain.Feedback, error)
	ApproveFeedback(ctx context.Context, sess *reservationapi.Session, id string) (*domain.Feedback, error)
	DeleteFeedback(ctx context.Context, sess *reservationapi.Session, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
