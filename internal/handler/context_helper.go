package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/middleware"
)

func requesterEmail(c *gin.Context) string {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return ""
	}
	return claims.Email
}
