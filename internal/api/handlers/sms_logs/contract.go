package sms_logs

import (
	"context"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/smslogs/models"
)

type SmsLogService interface {
	List(ctx context.Context, sess *reservationapi.Session, req *models.ListSmsLogsRequest) (*models.SmsLogListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
