package reservationapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
	"github.com/m04kA/barber-frontdesk/pkg/ptr"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, time.UTC, logger.NewNop())
}

func TestListReservations_FiltersLocally(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reservations", r.URL.Path)
		assert.Equal(t, "2025-01-10", r.URL.Query().Get("date"))
		assert.Equal(t, "E", r.URL.Query().Get("employeeId"))

		// API игнорирует фильтр и отдаёт всё
		_, _ = io.WriteString(w, `[
			{"id":"r1","customerName":"Max","service":"Cut","date":"2025-01-10T10:00:00.000Z","employeeId":"E","employee":{"name":"Nejib"}},
			{"id":"r2","customerName":"Eva","service":"Cut","date":"2025-01-11T10:00:00.000Z","employeeId":"E"},
			{"id":"r3","customerName":"Tom","service":"Cut","date":"2025-01-10T11:00:00.000Z","employeeId":"F"},
			{"id":"r4","customerName":"Bad","service":"Cut","date":"yesterday","employeeId":"E"}
		]`)
	})

	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	got, err := c.ListReservations(context.Background(), domain.ReservationFilter{Day: &day, EmployeeID: ptr.Ptr("E")})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "Nejib", got[0].EmployeeName)
	assert.True(t, got[0].Date.Equal(time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)))
}

func TestCreateReservation_ConflictAndSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body Reservation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, domain.BlockSentinel, body.CustomerName)
		assert.Equal(t, "2025-01-10T10:00:00.000Z", body.Date)

		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"slot taken"}`)
	})

	at := time.Date(2025, 1, 10, 11, 0, 0, 0, time.FixedZone("CET", 3600))
	_, err := c.CreateReservation(context.Background(), NewSession("secret"), domain.NewBlockReservation("E", at))

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "slot taken")
}

func TestCreateReservation_Created(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"new","customerName":"Max","service":"Haarschnitt","date":"2025-01-10T10:00:00Z","employeeId":"E"}`)
	})

	res, err := c.CreateReservation(context.Background(), nil, domain.Reservation{
		CustomerName: "Max",
		Service:      "Haarschnitt",
		Date:         time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		EmployeeID:   "E",
	})

	require.NoError(t, err)
	assert.Equal(t, "new", res.ID)
	assert.Equal(t, "E", res.EmployeeID)
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusInternalServerError, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			err := c.DeleteReservation(context.Background(), NewSession("t"), "r1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_TransportCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListEmployees(ctx)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfirmVerification_InvalidCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify/phone/confirm", r.URL.Path)
		var body phoneVerification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+4915123456789", body.Phone)
		assert.Equal(t, "0000", body.Code)

		w.WriteHeader(http.StatusBadRequest)
	})

	err := c.ConfirmVerification(context.Background(), domain.ChannelPhone, "+4915123456789", "0000")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestStartVerification_Email(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify/email/start", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "max@example.de"}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.StartVerification(context.Background(), domain.ChannelEmail, "max@example.de"))
}

func TestListSmsLogs_BothShapes(t *testing.T) {
	bodies := []string{
		`[{"id":"1","to":"+49151","status":"ok","createdAt":"2025-01-10T10:00:00Z"}]`,
		`{"items":[{"id":"1","to":"+49151","status":"ok","createdAt":"2025-01-10T10:00:00Z"}],"total":1}`,
	}

	for _, body := range bodies {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})

		logs, err := c.ListSmsLogs(context.Background(), NewSession("t"))
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, domain.SmsStatusOK, logs[0].Status)
	}
}

func TestFeedback_ApproveAndDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			assert.Equal(t, "/feedback/f1/approve", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":"f1","message":"Top","valid":true}`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	f, err := c.ApproveFeedback(context.Background(), NewSession("t"), "f1")
	require.NoError(t, err)
	assert.True(t, f.Approved)

	assert.NoError(t, c.DeleteFeedback(context.Background(), NewSession("t"), "f1"))
}

func TestCreateEmployee_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Nejib", r.FormValue("name"))
		assert.Equal(t, "نجيب", r.FormValue("nameAr"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "nejib.jpeg", header.Filename)

		_, _ = io.WriteString(w, `{"id":"e1","name":"Nejib","nameAr":"نجيب","createdAt":"2025-01-10T10:00:00Z"}`)
	})

	e, err := c.CreateEmployee(context.Background(), NewSession("t"), domain.EmployeeInput{
		Name:   "Nejib",
		NameAr: "نجيب",
		Photo:  &domain.Photo{FileName: "nejib.jpeg", Data: []byte{0xff, 0xd8}},
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, c.PhotoURL("e1"), e.PhotoURL)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "letmein" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"token":"abc"}`)
	})

	token, err := c.Login(context.Background(), "letmein")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = c.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), NewSession("abc"))
	s, ok := SessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc", s.Token)
}
