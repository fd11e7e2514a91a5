package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
)

type fakeAPI struct {
	token string
	err   error
}

func (f fakeAPI) Login(context.Context, string) (string, error) { return f.token, f.err }

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	s, err := tok.SignedString([]byte("secret-held-by-reservation-api"))
	require.NoError(t, err)
	return s
}

func TestLogin_ReadsExpiry(t *testing.T) {
	exp := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(fakeAPI{token: signed(t, exp)}, logger.NewNop())

	resp, err := svc.Login(context.Background(), "pw")
	require.NoError(t, err)
	require.NotNil(t, resp.ExpiresAt)
	assert.True(t, resp.ExpiresAt.Equal(exp))
}

func TestLogin_OpaqueToken(t *testing.T) {
	svc := NewService(fakeAPI{token: "opaque-token"}, logger.NewNop())

	resp, err := svc.Login(context.Background(), "pw")
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", resp.Token)
	assert.Nil(t, resp.ExpiresAt)
}

func TestLogin_Errors(t *testing.T) {
	svc := NewService(fakeAPI{err: reservationapi.ErrUnauthorized}, logger.NewNop())
	_, err := svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc = NewService(fakeAPI{err: errors.New("boom")}, logger.NewNop())
	_, err = svc.Login(context.Background(), "pw")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExpired(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, Expired(signed(t, now.Add(-time.Minute)), now))
	assert.False(t, Expired(signed(t, now.Add(time.Hour)), now))
	assert.False(t, Expired("opaque", now))
}
