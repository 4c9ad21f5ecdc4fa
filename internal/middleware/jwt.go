package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/sakila-rental-api/internal/config" // auth configuration
    "github.com/iliyamo/sakila-rental-api/internal/utils"  // token verification
)

// Context keys set by JWTAuth.
const (
    ctxUserID = "user_id"
    ctxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// signed with secret and stores the subject and role claims in the
// context under "user_id" and "role".
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            claims, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            c.Set(ctxUserID, claims.Subject)
            c.Set(ctxRole, claims.Role)
            return next(c)
        }
    }
}

// StaffOnly guards mutating routes.  With authentication disabled it is a
// pass-through; otherwise it chains JWTAuth and RequireRole(role).
func StaffOnly(cfg config.AuthConfig, role string) echo.MiddlewareFunc {
    if !cfg.Enabled() {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    auth := JWTAuth(cfg.JWTSecret)
    require := RequireRole(role)
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return auth(require(next))
    }
}
