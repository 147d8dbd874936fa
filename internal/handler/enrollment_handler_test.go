package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

type enrollmentServiceMock struct {
	items     map[string]models.Enrollment
	lastEmail string
	createErr error
	created   *models.Enrollment
}

func (m *enrollmentServiceMock) List(ctx context.Context) ([]models.Enrollment, error) {
	return m.ListByEmail(ctx, "")
}

func (m *enrollmentServiceMock) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	m.lastEmail = email
	out := make([]models.Enrollment, 0)
	for _, e := range m.items {
		if email == "" || e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *enrollmentServiceMock) Get(ctx context.Context, id string) (*models.Enrollment, error) {
	if e, ok := m.items[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *enrollmentServiceMock) Create(ctx context.Context, enrollment *models.Enrollment) (*models.EnrollmentCreated, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = enrollment
	return &models.EnrollmentCreated{InsertResult: models.InsertResult{Acknowledged: true, InsertedID: "x"}}, nil
}

func (m *enrollmentServiceMock) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	if _, ok := m.items[id]; ok {
		delete(m.items, id)
		return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

func enrollmentRouter(svc enrollmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEnrollmentHandler(svc)
	r := gin.New()
	r.GET("/selectstudent", h.ListByEmail)
	r.GET("/selectclass", h.List)
	r.GET("/selectclass/:id", h.Get)
	r.POST("/selectclasses", h.Create)
	r.DELETE("/selectclass/:id", h.Delete)
	return r
}

func TestEnrollmentHandlerDelete(t *testing.T) {
	svc := &enrollmentServiceMock{items: map[string]models.Enrollment{"e1": {Name: "Ink"}}}
	router := enrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/selectclass/e1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/selectclass/e1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())
}

func TestEnrollmentHandlerListByEmail(t *testing.T) {
	svc := &enrollmentServiceMock{items: map[string]models.Enrollment{
		"e1": {Email: "a@x.com", Name: "Ink"},
		"e2": {Email: "b@x.com", Name: "Clay"},
	}}
	router := enrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/selectstudent?email=a@x.com", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", svc.lastEmail)
	var items []models.Enrollment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Ink", items[0].Name)
}

func TestEnrollmentHandlerGetMissingIsNull(t *testing.T) {
	router := enrollmentRouter(&enrollmentServiceMock{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/selectclass/650000000000000000000001", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestEnrollmentHandlerCreateClassNotFound(t *testing.T) {
	svc := &enrollmentServiceMock{createErr: appErrors.Clone(appErrors.ErrNotFound, "class not found")}
	router := enrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON("/selectclasses", `{"menuItemId":"650000000000000000000001","email":"a@x.com"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":true,"code":"NOT_FOUND","message":"class not found"}`, w.Body.String())
}

func TestEnrollmentHandlerCreate(t *testing.T) {
	svc := &enrollmentServiceMock{}
	router := enrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON("/selectclasses", `{"name":"Ink","price":12.5,"email":"a@x.com"}`))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, 12.5, svc.created.Price)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"x"}`, w.Body.String())
}
