package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

type enrollmentRepository interface {
	List(ctx context.Context, filter models.EmailFilter) ([]models.Enrollment, error)
	FindByID(ctx context.Context, id primitive.ObjectID, fields []string) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) (*models.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type enrollmentClassRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID, fields []string) (*models.Class, error)
	IncrementEnrolled(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
}

// EnrollmentService manages classes students selected but have not paid for.
type EnrollmentService struct {
	repo    enrollmentRepository
	classes enrollmentClassRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService. classes is the approved catalogue and
// cache holds its cached listings, which go stale whenever a counter moves.
func NewEnrollmentService(repo enrollmentRepository, classes enrollmentClassRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, classes: classes, cache: cache, metrics: metrics, logger: logger}
}

// List returns every enrollment.
func (s *EnrollmentService) List(ctx context.Context) ([]models.Enrollment, error) {
	return s.ListByEmail(ctx, "")
}

// ListByEmail returns the enrollments of one student; an empty email returns all.
func (s *EnrollmentService) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	items, err := s.repo.List(ctx, models.EmailFilter{Email: email})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list selected classes")
	}
	return items, nil
}

// Get returns the projected enrollment or nil when nothing matches.
func (s *EnrollmentService) Get(ctx context.Context, idHex string) (*models.Enrollment, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id, models.EnrollmentSummaryFields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch selected class")
	}
	return item, nil
}

// Create stores the enrollment. When it references an approved class through menuItemId
// the class must exist and its enrolled counter is incremented.
func (s *EnrollmentService) Create(ctx context.Context, enrollment *models.Enrollment) (*models.EnrollmentCreated, error) {
	enrollment.ID = primitive.NilObjectID

	var classID primitive.ObjectID
	if enrollment.MenuItemID != "" {
		id, err := parseObjectID(enrollment.MenuItemID)
		if err != nil {
			return nil, err
		}
		if _, err := s.classes.FindByID(ctx, id, []string{"_id"}); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch class")
		}
		classID = id
	}

	inserted, err := s.repo.Create(ctx, enrollment)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to select class")
	}
	result := &models.EnrollmentCreated{InsertResult: *inserted}
	if classID.IsZero() {
		return result, nil
	}

	class, err := s.classes.IncrementEnrolled(ctx, classID)
	if err != nil {
		s.logger.Error("enrollment counter not updated",
			zap.String("class_id", classID.Hex()),
			zap.Any("enrollment_id", inserted.InsertedID),
			zap.Error(err))
		s.discard(ctx, inserted.InsertedID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update enrollment count")
	}
	if err := s.cache.Invalidate(ctx, approvedCachePattern); err != nil {
		s.logger.Warn("approved class cache not invalidated", zap.String("class_id", classID.Hex()), zap.Error(err))
	}
	s.metrics.IncEnrollments()
	result.Enrolled = &class.Enrolled
	return result, nil
}

// discard removes an enrollment whose class counter could not be updated.
func (s *EnrollmentService) discard(ctx context.Context, insertedID interface{}) {
	id, ok := insertedID.(primitive.ObjectID)
	if !ok {
		s.logger.Error("inserted enrollment has no object id", zap.Any("enrollment_id", insertedID))
		return
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to remove enrollment after counter failure",
			zap.String("enrollment_id", id.Hex()),
			zap.Error(err))
	}
}

// Delete removes one enrollment; a missing id yields deletedCount 0.
func (s *EnrollmentService) Delete(ctx context.Context, idHex string) (*models.DeleteResult, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete selected class")
	}
	return result, nil
}
