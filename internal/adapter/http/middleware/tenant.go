package middleware

import (
	"net/http"

	"accuracy_wms/internal/infrastructure/tenancy"
	"accuracy_wms/pkg"

	"github.com/gin-gonic/gin"
)

// TenantIdentifier resolves the X-Tenant-ID header against the configured
// tenant set and stores the tenant on the request context for the
// repositories. With no tenants configured, isolation is disabled and
// requests pass through untouched.
func TenantIdentifier() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(tenancy.Allowed()) == 0 {
			c.Next()
			return
		}

		tenantID := c.GetHeader("X-Tenant-ID")
		if tenantID == "" {
			appErr := pkg.NewDomainErrorSimple("TENANT_REQUIRED", "X-Tenant-ID header is required", http.StatusBadRequest)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !tenancy.Resolve(tenantID) {
			appErr := pkg.NewDomainErrorSimple("TENANT_UNKNOWN", "Tenant not found", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Request = c.Request.WithContext(tenancy.WithTenant(c.Request.Context(), tenantID))
		c.Next()
	}
}
