package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/artspires-api/internal/models"
	"github.com/noah-isme/artspires-api/internal/service"
	"github.com/noah-isme/artspires-api/pkg/response"
)

func newAuthService() *service.AuthService {
	return service.NewAuthService(nil, nil, service.AuthConfig{AccessTokenSecret: "middleware-secret", AccessTokenExpiry: time.Hour})
}

func issue(t *testing.T, svc *service.AuthService, email string) string {
	t.Helper()
	resp, err := svc.IssueToken(context.Background(), models.TokenRequest{Email: email})
	require.NoError(t, err)
	return resp.Token
}

func protectedRouter(auth *service.AuthService, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", JWT(auth), func(c *gin.Context) {
		*reached = true
		claims, _ := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorEnvelope {
	t.Helper()
	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestJWTAttachesClaims(t *testing.T) {
	auth := newAuthService()
	var reached bool
	router := protectedRouter(auth, &reached)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, auth, "s@x.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.JSONEq(t, `{"email":"s@x.com"}`, rec.Body.String())
}

func TestJWTRejects(t *testing.T) {
	auth := newAuthService()
	other := service.NewAuthService(nil, nil, service.AuthConfig{AccessTokenSecret: "other"})

	cases := map[string]string{
		"missing header":   "",
		"wrong scheme":     "Basic abc",
		"empty token":      "Bearer ",
		"garbage token":    "Bearer not-a-jwt",
		"foreign signer":   "Bearer " + issue(t, other, "s@x.com"),
		"no bearer prefix": issue(t, auth, "s@x.com"),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			var reached bool
			router := protectedRouter(auth, &reached)
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, reached)
			env := decodeEnvelope(t, rec)
			assert.True(t, env.Error)
			assert.Equal(t, "unauthorized access", env.Message)
		})
	}
}
