package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type userLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireRole lets the request through only when the stored role of the token's email equals role.
// It must run after JWT; without claims it answers 401.
func RequireRole(lookup userLookup, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}

		user, err := lookup.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			var appErr *appErrors.Error
			if errors.As(err, &appErr) && appErr.Code == appErrors.ErrNotFound.Code {
				response.Abort(c, appErrors.ErrForbidden)
				return
			}
			response.Abort(c, err)
			return
		}

		if user == nil || user.Role != role {
			response.Abort(c, appErrors.ErrForbidden)
			return
		}

		c.Next()
	}
}
