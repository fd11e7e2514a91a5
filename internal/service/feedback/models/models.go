package models

import (
	"time"

	"github.com/m04kA/barber-frontdesk/internal/domain"
)

// SubmitFeedbackRequest публичная форма отзыва. company - скрытое поле-ловушка для ботов
type SubmitFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  *int   `json:"rating,omitempty"`
	Company string `json:"company"`
}

// ToDomain конвертирует запрос в domain.FeedbackInput
func (r *SubmitFeedbackRequest) ToDomain() domain.FeedbackInput {
	return domain.FeedbackInput{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
		Rating:  r.Rating,
		Company: r.Company,
	}
}

// FeedbackResponse ответ с данными отзыва
type FeedbackResponse struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Message   string     `json:"message"`
	Rating    *int       `json:"rating,omitempty"`
	Approved  bool       `json:"approved"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// FromDomainFeedback конвертирует domain.Feedback в ответ
// withContact=false скрывает email автора в публичной выдаче
func FromDomainFeedback(f *domain.Feedback, withContact bool) FeedbackResponse {
	resp := FeedbackResponse{
		ID:       f.ID,
		Name:     f.Name,
		Message:  f.Message,
		Rating:   f.Rating,
		Approved: f.Approved,
	}
	if withContact {
		resp.Email = f.Email
	}
	if !f.CreatedAt.IsZero() {
		t := f.CreatedAt
		resp.CreatedAt = &t
	}
	return resp
}
