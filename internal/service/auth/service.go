package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
)

// LoginResponse токен администратора
// ExpiresAt заполняется, если токен является JWT с claim exp
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Service вход администратора
// Токен выдаёт API бронирований, подпись проверяет тоже оно: здесь токен только читается
type Service struct {
	api    LoginAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(api LoginAPI, logger Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Login обменивает пароль на токен
func (s *Service) Login(ctx context.Context, password string) (*LoginResponse, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	token, err := s.api.Login(ctx, password)
	if err != nil {
		if errors.Is(err, reservationapi.ErrUnauthorized) {
			s.logger.Warn("Login: rejected by reservation api")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: reservation api error: %v", err)
		return nil, fmt.Errorf("%w: Login - reservation api error: %v", ErrInternal, err)
	}

	resp := &LoginResponse{Token: token}
	if exp, ok := ExpiresAt(token); ok {
		resp.ExpiresAt = &exp
	}

	s.logger.Info("Login: admin logged in")
	return resp, nil
}

// ExpiresAt читает claim exp без проверки подписи. ok=false для не-JWT токенов и токенов без exp
func ExpiresAt(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired true, если токен является JWT и его exp уже наступил
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	return ok && !now.Before(exp)
}
