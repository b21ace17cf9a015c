package middleware

import (
	"net/http"
	"strings"

	"admin-backend/internal/response"
	"admin-backend/pkg/jwtutil"
	"admin-backend/pkg/logger"
	"admin-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token and attaches the admin identity
// to the request context. Requests are rejected here, before any handler or
// database work happens.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, response.Fail("No Token, Auth Denied."))
		}

		// A header that is present but not a Bearer pair is an invalid
		// credential, not a missing one.
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("malformed_header")
			return c.JSON(http.StatusUnauthorized, response.Fail("Invalid Token"))
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid or expired token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, response.Fail("Invalid Token"))
		}

		// Store the admin identity in the context for later use
		c.Set("admin", claims)
		log.Debug("Token validated",
			zap.Uint("admin_id", claims.ID),
			zap.String("userName", claims.UserName))

		return next(c)
	}
}

// GetAdminFromContext retrieves the authenticated admin claims from the context
func GetAdminFromContext(c echo.Context) (*jwtutil.AdminClaims, bool) {
	claims, ok := c.Get("admin").(*jwtutil.AdminClaims)
	return claims, ok
}
