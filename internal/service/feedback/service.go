package feedback

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/feedback/models"
)

const (
	maxMessageLen = 2000
	minRating     = 1
	maxRating     = 5
)

// Service сервис отзывов
type Service struct {
	api    FeedbackAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(api FeedbackAPI, logger Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Submit принимает публичный отзыв
// Заполненное поле-ловушка отклоняется без обращения к API
func (s *Service) Submit(ctx context.Context, req *models.SubmitFeedbackRequest) (*models.FeedbackResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Company) != "" {
		s.logger.Warn("Submit: honeypot field filled, rejecting")
		return nil, ErrSpam
	}
	if err := validateSubmit(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	in := req.ToDomain()
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	f, err := s.api.CreateFeedback(ctx, in)
	if err != nil {
		s.logger.Error("Submit: failed to create feedback: %v", err)
		return nil, mapUpstream("Submit", err)
	}

	s.logger.Info("Submit: feedback id=%s received", f.ID)
	resp := models.FromDomainFeedback(f, false)
	return &resp, nil
}

// ListPublic одобренные отзывы для сайта
func (s *Service) ListPublic(ctx context.Context) ([]models.FeedbackResponse, error) {
	list, err := s.api.ListFeedback(ctx, nil, domain.FeedbackApproved)
	if err != nil {
		s.logger.Error("ListPublic: failed to list feedback: %v", err)
		return nil, mapUpstream("ListPublic", err)
	}
	return toResponses(list, false), nil
}

// List отзывы для модерации. filter: all, true или false
func (s *Service) List(ctx context.Context, sess *reservationapi.Session, filter domain.FeedbackFilter) ([]models.FeedbackResponse, error) {
	if filter == "" {
		filter = domain.FeedbackAll
	}
	if !filter.IsValid() {
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, filter)
	}

	list, err := s.api.ListFeedback(ctx, sess, filter)
	if err != nil {
		s.logger.Error("List: failed to list feedback (filter=%s): %v", filter, err)
		return nil, mapUpstream("List", err)
	}
	return toResponses(list, true), nil
}

// Approve одобряет отзыв
func (s *Service) Approve(ctx context.Context, sess *reservationapi.Session, id string) (*models.FeedbackResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	f, err := s.api.ApproveFeedback(ctx, sess, id)
	if err != nil {
		s.logger.Error("Approve: failed to approve feedback id=%s: %v", id, err)
		return nil, mapUpstream("Approve", err)
	}

	s.logger.Info("Approve: approved feedback id=%s", id)
	if f == nil {
		// API ответило пустым телом
		f = &domain.Feedback{ID: id, Approved: true}
	}
	resp := models.FromDomainFeedback(f, true)
	return &resp, nil
}

// Delete удаляет отзыв
func (s *Service) Delete(ctx context.Context, sess *reservationapi.Session, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.api.DeleteFeedback(ctx, sess, id); err != nil {
		s.logger.Error("Delete: failed to delete feedback id=%s: %v", id, err)
		return mapUpstream("Delete", err)
	}
	s.logger.Info("Delete: deleted feedback id=%s", id)
	return nil
}

func validateSubmit(req *models.SubmitFeedbackRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !domain.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len([]rune(msg)) > maxMessageLen {
		return fmt.Errorf("%w: message is longer than %d characters", ErrInvalidInput, maxMessageLen)
	}
	if req.Rating != nil && (*req.Rating < minRating || *req.Rating > maxRating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, minRating, maxRating)
	}
	return nil
}

// toResponses новые отзывы первыми
func toResponses(list []domain.Feedback, withContact bool) []models.FeedbackResponse {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	out := make([]models.FeedbackResponse, len(list))
	for i := range list {
		out[i] = models.FromDomainFeedback(&list[i], withContact)
	}
	return out
}

func mapUpstream(op string, err error) error {
	switch {
	case errors.Is(err, reservationapi.ErrNotFound):
		return ErrFeedbackNotFound
	case errors.Is(err, reservationapi.ErrUnauthorized):
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %s - reservation api error: %v", ErrInternal, op, err)
	}
}
