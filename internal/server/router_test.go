package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/artspires-api/internal/handler"
	"github.com/noah-isme/artspires-api/internal/models"
	"github.com/noah-isme/artspires-api/internal/service"
	"github.com/noah-isme/artspires-api/pkg/config"
)

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) { return f.users, nil }

func (f *fakeUsers) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	return []models.User{}, nil
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	f.users = append(f.users, *user)
	return &models.InsertResult{Acknowledged: true}, nil
}

func (f *fakeUsers) SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*models.UpdateResult, error) {
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeClasses struct{}

func (fakeClasses) List(ctx context.Context) ([]models.Class, error) { return []models.Class{}, nil }

func (fakeClasses) FindByID(ctx context.Context, id primitive.ObjectID, fields []string) (*models.Class, error) {
	return nil, mongo.ErrNoDocuments
}

func (fakeClasses) Create(ctx context.Context, class *models.Class) (*models.InsertResult, error) {
	return &models.InsertResult{Acknowledged: true}, nil
}

type testEnv struct {
	router *gin.Engine
	auth   *service.AuthService
}

func newTestEnv(t *testing.T, guards config.GuardConfig) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: config.EnvProduction, Guards: guards, Metrics: config.MetricsConfig{Enabled: true}}
	auth := service.NewAuthService(nil, nil, service.AuthConfig{AccessTokenSecret: "router-secret", AccessTokenExpiry: time.Hour})
	users := service.NewUserService(&fakeUsers{users: []models.User{
		{Email: "admin@x.com", Role: models.RoleAdmin},
		{Email: "teach@x.com", Role: models.RoleInstructor},
		{Email: "student@x.com"},
	}}, nil, nil)
	metrics := service.NewMetricsService()
	classes := service.NewClassService(fakeClasses{}, fakeClasses{}, nil, nil)

	router := NewRouter(cfg, Dependencies{Auth: auth, Users: users, Metrics: metrics}, Handlers{
		Auth:     handler.NewAuthHandler(auth),
		Users:    handler.NewUserHandler(users),
		Classes:  handler.NewClassHandler(classes),
		Payments: handler.NewPaymentHandler(service.NewPaymentService(nil, nil, nil, metrics, nil)),
		Metrics:  handler.NewMetricsHandler(metrics, nil),
	})
	return testEnv{router: router, auth: auth}
}

func (e testEnv) do(t *testing.T, method, path, email, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		resp, err := e.auth.IssueToken(context.Background(), models.TokenRequest{Email: email})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRouterRoleElevationGuarded(t *testing.T) {
	env := newTestEnv(t, config.GuardConfig{RoleElevation: true})
	path := "/users/admin/" + primitive.NewObjectID().Hex()

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPatch, path, "", "").Code)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodPatch, path, "student@x.com", "").Code)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodPatch, "/users/instructor/"+primitive.NewObjectID().Hex(), "teach@x.com", "").Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPatch, path, "admin@x.com", "").Code)
}

func TestRouterRoleElevationOpen(t *testing.T) {
	env := newTestEnv(t, config.GuardConfig{})
	rec := env.do(t, http.MethodPatch, "/users/instructor/"+primitive.NewObjectID().Hex(), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterClassWriteGuards(t *testing.T) {
	open := newTestEnv(t, config.GuardConfig{})
	assert.Equal(t, http.StatusOK, open.do(t, http.MethodPost, "/approveclasses", "", `{"name":"Ink"}`).Code)

	guarded := newTestEnv(t, config.GuardConfig{ClassWrites: true})
	assert.Equal(t, http.StatusUnauthorized, guarded.do(t, http.MethodPost, "/classes", "", `{"name":"Ink"}`).Code)
	assert.Equal(t, http.StatusOK, guarded.do(t, http.MethodPost, "/classes", "teach@x.com", `{"name":"Ink"}`).Code)
	assert.Equal(t, http.StatusForbidden, guarded.do(t, http.MethodPost, "/approveclasses", "teach@x.com", `{"name":"Ink"}`).Code)
	assert.Equal(t, http.StatusOK, guarded.do(t, http.MethodPost, "/approveclasses", "admin@x.com", `{"name":"Ink"}`).Code)
}

func TestRouterTokenRoutes(t *testing.T) {
	env := newTestEnv(t, config.GuardConfig{})

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/create-payment-intent", "", `{"price":10}`).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/users/admin/admin@x.com", "", "").Code)

	rec := env.do(t, http.MethodGet, "/users/admin/admin@x.com", "admin@x.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())
}

func TestRouterOperationalRoutes(t *testing.T) {
	env := newTestEnv(t, config.GuardConfig{})

	rec := env.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, "art-spires-academy is running", rec.Body.String())
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/metrics", "", "").Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/docs/index.html", "", "").Code)
}
