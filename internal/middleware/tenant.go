package middleware

import (
	"net/http"
	"strings"

	"fleetflow/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	TenantHeader = "tenant-id"
	tenantIDKey  = "tenantID"
	userIDKey    = "userID"
)

// RequireTenant rejects requests without a tenant-id header and stores the
// tenant on the context.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "tenant-id header is required"))
			return
		}
		c.Set(tenantIDKey, tenantID)
		c.Next()
	}
}

// TenantID returns the tenant resolved by RequireTenant.
func TenantID(c *gin.Context) string {
	return c.GetString(tenantIDKey)
}

// UserID returns the token subject, or "" when auth is disabled.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
