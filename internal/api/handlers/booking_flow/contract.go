package booking_flow

import (
	"context"
	"time"

	bookingFlow "github.com/m04kA/barber-frontdesk/internal/usecase/booking_flow"
)

type BookingFlowUseCase interface {
	Start(ctx context.Context) (*bookingFlow.View, error)
	Get(ctx context.Context, id string) (*bookingFlow.View, error)
	SelectDate(ctx context.Context, id string, date time.Time) (*bookingFlow.View, error)
	SelectEmployee(ctx context.Context, id, employeeID string) (*bookingFlow.View, error)
	SelectSlot(ctx context.Context, id string, start time.Time) (*bookingFlow.View, error)
	SendCode(ctx context.Context, id, name, contact string) (*bookingFlow.View, error)
	Verify(ctx context.Context, id, code string) (*bookingFlow.View, error)
	Retry(ctx context.Context, id string) (*bookingFlow.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
