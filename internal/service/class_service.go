package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

const (
	approvedCachePattern = "classes:approved:*"
	approvedListCacheKey = "classes:approved:list"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID, fields []string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (*models.InsertResult, error)
}

// ClassService manages pending class submissions and the approved catalogue.
type ClassService struct {
	pending  classRepository
	approved classRepository
	cache    *CacheService
	logger   *zap.Logger
}

// NewClassService constructs a ClassService. cache may be nil.
func NewClassService(pending, approved classRepository, cache *CacheService, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{pending: pending, approved: approved, cache: cache, logger: logger}
}

// ListPending returns every submitted class.
func (s *ClassService) ListPending(ctx context.Context) ([]models.Class, error) {
	classes, err := s.pending.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// GetPending returns the projected submission or nil when nothing matches.
func (s *ClassService) GetPending(ctx context.Context, idHex string) (*models.Class, error) {
	return s.get(ctx, s.pending, idHex)
}

// CreatePending stores a class submitted by an instructor.
func (s *ClassService) CreatePending(ctx context.Context, class *models.Class) (*models.InsertResult, error) {
	class.ID = primitive.NilObjectID
	result, err := s.pending.Create(ctx, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return result, nil
}

// Approve copies a class into the approved catalogue. No link to the pending submission is kept.
func (s *ClassService) Approve(ctx context.Context, class *models.Class) (*models.InsertResult, error) {
	class.ID = primitive.NilObjectID
	result, err := s.approved.Create(ctx, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to approve class")
	}
	if err := s.cache.Invalidate(ctx, approvedCachePattern); err != nil {
		s.logger.Warn("approved class cache not invalidated", zap.Error(err))
	}
	return result, nil
}

// ListApproved returns the approved catalogue, served from cache when enabled.
func (s *ClassService) ListApproved(ctx context.Context) ([]models.Class, error) {
	var cached []models.Class
	if hit, _ := s.cache.Get(ctx, approvedListCacheKey, &cached); hit {
		return cached, nil
	}

	classes, err := s.approved.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list approved classes")
	}
	_ = s.cache.Set(ctx, approvedListCacheKey, classes, 0)
	return classes, nil
}

// GetApproved returns the projected approved class or nil when nothing matches.
func (s *ClassService) GetApproved(ctx context.Context, idHex string) (*models.Class, error) {
	key := fmt.Sprintf("classes:approved:%s", idHex)
	var cached models.Class
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	class, err := s.get(ctx, s.approved, idHex)
	if err != nil || class == nil {
		return class, err
	}
	_ = s.cache.Set(ctx, key, class, 0)
	return class, nil
}

func (s *ClassService) get(ctx context.Context, repo classRepository, idHex string) (*models.Class, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	class, err := repo.FindByID(ctx, id, models.ClassSummaryFields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch class")
	}
	return class, nil
}
