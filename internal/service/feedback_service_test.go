package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

type mockFeedbackRepo struct {
	items   []models.Feedback
	listErr error
}

func (m *mockFeedbackRepo) List(ctx context.Context) ([]models.Feedback, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback models.Feedback) (*models.InsertResult, error) {
	m.items = append(m.items, feedback)
	return &models.InsertResult{Acknowledged: true, InsertedID: len(m.items)}, nil
}

func TestFeedbackServiceCreate(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := NewFeedbackService(repo, nil)

	_, err := svc.Create(context.Background(), models.Feedback{"_id": "client", "comment": "loved it", "rating": 5})
	require.NoError(t, err)
	require.Len(t, repo.items, 1)
	assert.NotContains(t, repo.items[0], "_id")
	assert.Equal(t, "loved it", repo.items[0]["comment"])

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFeedbackServiceRejectsEmpty(t *testing.T) {
	svc := NewFeedbackService(&mockFeedbackRepo{}, nil)

	_, err := svc.Create(context.Background(), models.Feedback{})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestFeedbackServiceListFailure(t *testing.T) {
	svc := NewFeedbackService(&mockFeedbackRepo{listErr: errors.New("socket closed")}, nil)

	_, err := svc.List(context.Background())
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "failed to list feedback", appErr.Message)
}
