package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/feedback/models"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
)

type fakeAPI struct {
	list       []domain.Feedback
	filter     domain.FeedbackFilter
	created    []domain.FeedbackInput
	approveNil bool
}

func (f *fakeAPI) ListFeedback(_ context.Context, _ *reservationapi.Session, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	f.filter = filter
	return f.list, nil
}

func (f *fakeAPI) CreateFeedback(_ context.Context, in domain.FeedbackInput) (*domain.Feedback, error) {
	f.created = append(f.created, in)
	return &domain.Feedback{ID: "fb1", Message: in.Message}, nil
}

func (f *fakeAPI) ApproveFeedback(_ context.Context, _ *reservationapi.Session, id string) (*domain.Feedback, error) {
	if f.approveNil {
		return nil, nil
	}
	return &domain.Feedback{ID: id, Approved: true}, nil
}

func (f *fakeAPI) DeleteFeedback(context.Context, *reservationapi.Session, string) error { return nil }

func TestSubmit_Honeypot(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, logger.NewNop())

	_, err := svc.Submit(context.Background(), &models.SubmitFeedbackRequest{
		Name: "Bot", Email: "bot@example.com", Message: "buy now", Company: "ACME",
	})
	assert.ErrorIs(t, err, ErrSpam)
	assert.Empty(t, api.created)
}

func TestSubmit_Validation(t *testing.T) {
	svc := NewService(&fakeAPI{}, logger.NewNop())
	six := 6

	cases := []*models.SubmitFeedbackRequest{
		{Email: "a@b.de", Message: "hi"},
		{Name: "Max", Message: "hi"},
		{Name: "Max", Email: "a@b", Message: "hi"},
		{Name: "Max", Email: "a@b.de", Message: "   "},
		{Name: "Max", Email: "a@b.de", Message: "hi", Rating: &six},
	}
	for _, req := range cases {
		_, err := svc.Submit(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestSubmit_TrimsAndHidesEmail(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, logger.NewNop())

	resp, err := svc.Submit(context.Background(), &models.SubmitFeedbackRequest{
		Name: " Max ", Email: "max@example.com", Message: " Toller Schnitt! ",
	})
	require.NoError(t, err)
	assert.Equal(t, "fb1", resp.ID)
	assert.Nil(t, resp.Email)
	require.Len(t, api.created, 1)
	assert.Equal(t, "Max", api.created[0].Name)
	assert.Equal(t, "Toller Schnitt!", api.created[0].Message)
}

func TestList_Filters(t *testing.T) {
	email := "max@example.com"
	api := &fakeAPI{list: []domain.Feedback{
		{ID: "old", Email: &email, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "new", Email: &email, CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewService(api, logger.NewNop())

	list, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackAll, api.filter)
	assert.Equal(t, "new", list[0].ID)
	assert.NotNil(t, list[0].Email)

	_, err = svc.List(context.Background(), nil, "maybe")
	assert.ErrorIs(t, err, ErrInvalidInput)

	public, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackApproved, api.filter)
	assert.Nil(t, public[0].Email)
}

func TestApprove_EmptyBody(t *testing.T) {
	svc := NewService(&fakeAPI{approveNil: true}, logger.NewNop())

	resp, err := svc.Approve(context.Background(), nil, "fb1")
	require.NoError(t, err)
	assert.Equal(t, "fb1", resp.ID)
	assert.True(t, resp.Approved)
}
