package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

type feedbackRepository interface {
	List(ctx context.Context) ([]models.Feedback, error)
	Create(ctx context.Context, feedback models.Feedback) (*models.InsertResult, error)
}

// FeedbackService stores free-form feedback.
type FeedbackService struct {
	repo   feedbackRepository
	logger *zap.Logger
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(repo feedbackRepository, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{repo: repo, logger: logger}
}

// List returns every stored feedback document.
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	return items, nil
}

// Create stores the submitted document as is, minus any client supplied _id.
func (s *FeedbackService) Create(ctx context.Context, feedback models.Feedback) (*models.InsertResult, error) {
	if len(feedback) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "feedback body is required")
	}
	delete(feedback, "_id")
	result, err := s.repo.Create(ctx, feedback)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save feedback")
	}
	return result, nil
}
