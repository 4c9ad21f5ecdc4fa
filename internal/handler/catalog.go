// Package handler exposes the HTTP handlers of the rental store API.
// This file serves the read-only catalog: films, actors, categories and the
// ranking reports built on them.
package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sakila-rental-api/internal/repository"
)

// CatalogHandler aggregates the repositories behind the catalog endpoints.
type CatalogHandler struct {
    Films      *repository.FilmRepo
    Actors     *repository.ActorRepo
    Categories *repository.CategoryRepo
    Timeout    time.Duration
}

// NewCatalogHandler panics if any repository is nil.
func NewCatalogHandler(films *repository.FilmRepo, actors *repository.ActorRepo, categories *repository.CategoryRepo, timeout time.Duration) *CatalogHandler {
    if films == nil || actors == nil || categories == nil {
        panic("nil repository passed to NewCatalogHandler")
    }
    return &CatalogHandler{Films: films, Actors: actors, Categories: categories, Timeout: timeout}
}

// TopFilms returns the five most rented films with their category.
func (h *CatalogHandler) TopFilms(c echo.Context) error {
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    out, err := h.Films.TopRented(ctx)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// TopRevenue returns the five films with the highest payment totals.
func (h *CatalogHandler) TopRevenue(c echo.Context) error {
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    out, err := h.Films.TopRevenue(ctx)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// GetFilm returns a single film by id.
func (h *CatalogHandler) GetFilm(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return invalidID(c)
    }
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    f, err := h.Films.GetByID(ctx, id)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, f)
}

func (h *CatalogHandler) TopActors(c echo.Context) error {
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    out, err := h.Actors.TopRented(ctx)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}

// GetActor returns the actor and the actor's five most rented films.
func (h *CatalogHandler) GetActor(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return invalidID(c)
    }
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    d, err := h.Actors.Detail(ctx, id)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, d)
}

func (h *CatalogHandler) TopCategories(c echo.Context) error {
    ctx, cancel := requestCtx(c, h.Timeout)
    defer cancel()
    out, err := h.Categories.TopRented(ctx)
    if err != nil {
        return storeError(c, err)
    }
    return c.JSON(http.StatusOK, out)
}
