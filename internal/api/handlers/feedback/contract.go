package feedback

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/feedback/models"
)

type FeedbackService interface {
	Submit(ctx context.Context, req *models.SubmitFeedbackRequest) (*models.FeedbackResponse, error)
	ListPublic(ctx context.Context) ([]models.FeedbackResponse, error)
	List(ctx context.Context, sess *reservationapi.Session, filter domain.FeedbackFilter) ([]models.FeedbackResponse, error)
	Approve(ctx context.Context, sess *reservationapi.Session, id string) (*models.FeedbackResponse, error)
	Delete(ctx context.Context, sess *reservationapi.Session, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
