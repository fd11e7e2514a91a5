package sms_logs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	smslogsService "github.com/m04kA/barber-frontdesk/internal/service/smslogs"
	"github.com/m04kA/barber-frontdesk/internal/service/smslogs/models"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
)

type fakeService struct {
	got *models.ListSmsLogsRequest
	err error
}

func (f *fakeService) List(ctx context.Context, sess *reservationapi.Session, req *models.ListSmsLogsRequest) (*models.SmsLogListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SmsLogListResponse{Total: 2}, nil
}

func TestHandler_PassesFilters(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/sms-logs?status=error&phone=0151&grouped=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "error", *svc.got.Status)
	assert.Equal(t, "0151", svc.got.Phone)
	assert.True(t, svc.got.Grouped)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestHandler_Errors(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/sms-logs?grouped=sometimes", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeService{err: smslogsService.ErrInvalidInput}, logger.NewNop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/sms-logs?status=weird", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeService{err: smslogsService.ErrUnauthorized}, logger.NewNop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/admin/sms-logs", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
