package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

const userExistsMessage = "user already exists"

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.InsertResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*models.UpdateResult, error)
}

// UserService handles user registration, listing and role management.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, nil
}

// ListInstructors returns users holding the instructor role.
func (s *UserService) ListInstructors(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return users, nil
}

// Create stores the user unless the email is already registered. The result is either
// *models.InsertResult or *models.UserExistsResponse; both answer with 200.
func (s *UserService) Create(ctx context.Context, user *models.User) (interface{}, error) {
	user.Email = strings.TrimSpace(user.Email)
	if err := s.validator.Var(user.Email, "required,email"); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user email")
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check user")
	}
	if existing != nil {
		return &models.UserExistsResponse{Message: userExistsMessage}, nil
	}

	// Roles are only granted through the elevation endpoints.
	user.Role = models.RoleStudent
	user.ID = primitive.NilObjectID
	result, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	return result, nil
}

// FindByEmail returns the stored user or a NOT_FOUND error.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}
	return user, nil
}

// IsAdmin reports whether email holds the admin role. A requester may only ask about itself.
func (s *UserService) IsAdmin(ctx context.Context, requester, email string) (*models.AdminCheck, error) {
	ok, err := s.hasRole(ctx, requester, email, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &models.AdminCheck{Admin: ok}, nil
}

// IsInstructor reports whether email holds the instructor role. A requester may only ask about itself.
func (s *UserService) IsInstructor(ctx context.Context, requester, email string) (*models.InstructorCheck, error) {
	ok, err := s.hasRole(ctx, requester, email, models.RoleInstructor)
	if err != nil {
		return nil, err
	}
	return &models.InstructorCheck{Instructor: ok}, nil
}

func (s *UserService) hasRole(ctx context.Context, requester, email string, role models.UserRole) (bool, error) {
	if requester != email {
		return false, nil
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}
	return user.Role == role, nil
}

// SetRole overwrites the role of the user identified by the hex id.
func (s *UserService) SetRole(ctx context.Context, idHex string, role models.UserRole) (*models.UpdateResult, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user role")
	}
	if result.MatchedCount > 0 {
		s.logger.Info("user role changed", zap.String("user_id", idHex), zap.String("role", string(role)))
	}
	return result, nil
}
