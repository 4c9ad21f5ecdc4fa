package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/iliyamo/sakila-rental-api/internal/logging"
)

// Principal returns the subject and role JWTAuth stored for the request.
// Both are empty on unauthenticated routes.
func Principal(c echo.Context) (subject, role string) {
    subject, _ = c.Get(ctxUserID).(string)
    role, _ = c.Get(ctxRole).(string)
    return subject, role
}

// RequireRole admits requests whose role claim is one of roles and
// answers 403 otherwise.  It must run after JWTAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]struct{}, len(roles))
    for _, r := range roles {
        allowed[r] = struct{}{}
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            subject, role := Principal(c)
            if _, ok := allowed[role]; !ok {
                logging.Warn().
                    Str("subject", subject).
                    Str("role", role).
                    Str("route", c.Request().Method+" "+c.Path()).
                    Msg("write denied")
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
