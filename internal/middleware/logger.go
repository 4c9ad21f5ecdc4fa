package middleware

import (
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sakila-rental-api/internal/logging"
)

// RequestLogger writes one structured line per request.
func RequestLogger() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err) // let Echo write the response so the status is final
            }
            req, res := c.Request(), c.Response()
            ev := logging.Info()
            if res.Status >= 500 {
                ev = logging.Error()
            }
            ev.Str("method", req.Method).
                Str("route", c.Path()).
                Str("uri", req.RequestURI).
                Int("status", res.Status).
                Dur("latency", time.Since(start)).
                Str("remote_ip", c.RealIP())
            if subject, _ := Principal(c); subject != "" {
                ev.Str("staff", subject)
            }
            ev.Msg("request")
            return nil
        }
    }
}
