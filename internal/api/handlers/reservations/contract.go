package reservations

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
	Create(ctx context.Context, sess *reservationapi.Session, req *models.CreateReservationRequest) (*models.ReservationResponse, error)
	Update(ctx context.Context, sess *reservationapi.Session, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error)
	Delete(ctx context.Context, sess *reservationapi.Session, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
