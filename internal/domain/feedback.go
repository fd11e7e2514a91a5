package domain

import "time"

// Feedback represents a customer review
type Feedback struct {
	ID        string
	Name      *string
	Email     *string
	Message   string
	Rating    *int
	Approved  bool // "valid" on the wire
	CreatedAt time.Time
}

// FeedbackFilter moderation filter for feedback listings
type FeedbackFilter string

const (
	FeedbackAll        FeedbackFilter = "all"
	FeedbackApproved   FeedbackFilter = "true"
	FeedbackUnapproved FeedbackFilter = "false"
)

// IsValid returns true for known filter values
func (f FeedbackFilter) IsValid() bool {
	switch f {
	case FeedbackAll, FeedbackApproved, FeedbackUnapproved:
		return true
	}
	return false
}

// FeedbackInput public feedback form
// Company is a honeypot field and must stay empty
type FeedbackInput struct {
	Name    string
	Email   string
	Message string
	Rating  *int
	Company string
}
