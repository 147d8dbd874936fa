package server

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/handler"
	"github.com/noah-isme/artspires-api/internal/middleware"
	"github.com/noah-isme/artspires-api/internal/models"
	"github.com/noah-isme/artspires-api/internal/service"
	"github.com/noah-isme/artspires-api/pkg/config"
	"github.com/noah-isme/artspires-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/artspires-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/artspires-api/pkg/middleware/requestid"
)

type roleLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Classes    *handler.ClassHandler
	Enrollment *handler.EnrollmentHandler
	Payments   *handler.PaymentHandler
	Feedback   *handler.FeedbackHandler
	Metrics    *handler.MetricsHandler
}

// Dependencies are the collaborators the middleware chain needs.
type Dependencies struct {
	Auth    *service.AuthService
	Users   roleLookup
	Metrics *service.MetricsService
	Logger  *zap.Logger
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(cfg *config.Config, deps Dependencies, h Handlers) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(corsmiddleware.New(corsmiddleware.DefaultOptions(cfg.CORS.AllowedOrigins)))

	token := middleware.JWT(deps.Auth)
	admin := middleware.RequireRole(deps.Users, models.RoleAdmin)
	instructor := middleware.RequireRole(deps.Users, models.RoleInstructor)

	r.GET("/", h.Metrics.Root)
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/jwt", h.Auth.IssueToken)

	r.GET("/users", h.Users.List)
	r.POST("/users", h.Users.Create)
	r.GET("/instructorusers", h.Users.ListInstructors)
	r.GET("/users/admin/:email", token, h.Users.IsAdmin)
	r.GET("/users/instructor/:email", token, h.Users.IsInstructor)
	if cfg.Guards.RoleElevation {
		r.PATCH("/users/admin/:id", token, admin, h.Users.MakeAdmin)
		r.PATCH("/users/instructor/:id", token, admin, h.Users.MakeInstructor)
	} else {
		r.PATCH("/users/admin/:id", h.Users.MakeAdmin)
		r.PATCH("/users/instructor/:id", h.Users.MakeInstructor)
	}

	r.GET("/selectstudent", h.Enrollment.ListByEmail)
	r.POST("/selectclasses", h.Enrollment.Create)
	r.GET("/selectclass", h.Enrollment.List)
	r.GET("/selectclass/:id", h.Enrollment.Get)
	r.DELETE("/selectclass/:id", h.Enrollment.Delete)

	r.GET("/classes", h.Classes.ListPending)
	r.GET("/classes/:id", h.Classes.GetPending)
	r.GET("/appreveclasses", h.Classes.ListApproved)
	r.GET("/appreveclasses/:id", h.Classes.GetApproved)
	if cfg.Guards.ClassWrites {
		r.POST("/classes", token, instructor, h.Classes.CreatePending)
		r.POST("/approveclasses", token, admin, h.Classes.Approve)
	} else {
		r.POST("/classes", h.Classes.CreatePending)
		r.POST("/approveclasses", h.Classes.Approve)
	}

	r.POST("/feedback", h.Feedback.Create)
	r.GET("/getfeedback", h.Feedback.List)

	r.GET("/succefulpay", h.Payments.List)
	r.POST("/create-payment-intent", token, h.Payments.CreateIntent)
	r.POST("/payments", token, h.Payments.Record)

	return r
}
