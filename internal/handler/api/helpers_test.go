//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// fakeAuth accepts bearer tokens of the form "<role>:<subject>".
func fakeAuth(c *gin.Context) {
	raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	role, subject, _ := strings.Cut(raw, ":")
	middleware.SetPrincipal(c, auth.Principal{Subject: subject, Role: auth.Role(role)})
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
