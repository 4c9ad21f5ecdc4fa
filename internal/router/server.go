package router

import (
    "database/sql"
    "net/http"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/sakila-rental-api/internal/config"
    "github.com/iliyamo/sakila-rental-api/internal/handler"
    "github.com/iliyamo/sakila-rental-api/internal/metrics"
    "github.com/iliyamo/sakila-rental-api/internal/middleware"
    "github.com/iliyamo/sakila-rental-api/internal/repository"
    "github.com/iliyamo/sakila-rental-api/internal/service"
)

// Deps are the process-wide collaborators of the HTTP server.  Redis and
// Events may be nil; Metrics nil disables /metrics.
type Deps struct {
    Cfg       config.Config
    RateLimit config.RateLimitConfig
    DB        *sql.DB
    Redis     *redis.Client
    Events    handler.EventPublisher
    Metrics   *metrics.Metrics
}

// New builds the Echo instance with the middleware stack and every route.
func New(d Deps) *echo.Echo {
    e := echo.New()
    e.HideBanner = true
    e.HidePort = true

    if d.Events == nil {
        d.Events = service.NopPublisher{}
    }

    e.Use(echomw.Recover())
    e.Use(middleware.RequestLogger())
    if d.Metrics != nil {
        e.Use(d.Metrics.Middleware())
        e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
    }
    e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
        AllowOrigins: []string{"*"},
        AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
        AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
    }))
    e.Use(middleware.NewTokenBucket(d.RateLimit, d.Redis))

    films := repository.NewFilmRepo(d.DB)
    actors := repository.NewActorRepo(d.DB)
    categories := repository.NewCategoryRepo(d.DB)
    customers := repository.NewCustomerRepo(d.DB)
    rentals := repository.NewRentalRepo(d.DB)

    guard := middleware.StaffOnly(d.Cfg.Auth, handler.StaffRole)
    timeout := d.Cfg.RequestTimeout

    RegisterRoutes(e, &handler.HealthHandler{DB: d.DB})
    RegisterAuth(e, handler.NewAuthHandler(d.Cfg.Auth))
    RegisterCatalog(e, handler.NewCatalogHandler(films, actors, categories, timeout))
    RegisterCustomers(e, handler.NewCustomerHandler(customers, rentals, d.Events, timeout), guard)
    RegisterRentals(e, handler.NewRentalHandler(rentals, d.Events, timeout), guard)
    return e
}
