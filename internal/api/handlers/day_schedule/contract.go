package day_schedule

import (
	"context"

	daySchedule "github.com/m04kA/barber-frontdesk/internal/usecase/day_schedule"
)

type DayScheduleUseCase interface {
	Execute(ctx context.Context, req *daySchedule.Request) (*daySchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
