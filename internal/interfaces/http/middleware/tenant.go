package middleware

import (
	"net/http"
	"strings"

	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header and context keys carrying the caller identity
const (
	TenantIDKey     = "tenant_id"
	TenantHeaderKey = "X-Tenant-ID"
	ActorKey        = "actor"
	ActorHeaderKey  = "X-Actor"
)

// DefaultActor is recorded on audit rows when the caller did not name itself
const DefaultActor = "api"

// TenantConfig holds configuration for tenant middleware
type TenantConfig struct {
	// SkipPaths are paths that don't require tenant context (e.g., health check)
	SkipPaths []string
}

// DefaultTenantConfig returns default tenant middleware configuration
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		SkipPaths: []string{"/health", "/metrics"},
	}
}

// Tenant requires a UUID X-Tenant-ID header on every request outside SkipPaths and
// binds the tenant and the X-Actor header to the request. Authentication happens
// in front of this service, which trusts both headers.
func Tenant(cfg TenantConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip || strings.HasPrefix(path, skip+"/") {
				c.Next()
				return
			}
		}

		raw := c.GetHeader(TenantHeaderKey)
		if raw == "" {
			respondUnauthorized(c, "Tenant identification required")
			return
		}
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			respondUnauthorized(c, "Invalid tenant ID format")
			return
		}
		c.Set(TenantIDKey, tenantID)

		actor := strings.TrimSpace(c.GetHeader(ActorHeaderKey))
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(ActorKey, actor)

		ctx := c.Request.Context()
		ctx, _ = logger.WithTenantID(ctx, logger.FromContext(ctx), tenantID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetTenantID returns the tenant bound by Tenant, or uuid.Nil
func GetTenantID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(TenantIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetActor returns the acting principal bound by Tenant
func GetActor(c *gin.Context) string {
	if actor := c.GetString(ActorKey); actor != "" {
		return actor
	}
	return DefaultActor
}
