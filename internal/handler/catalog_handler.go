package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/models"
	"github.com/strakotou/travel-backend/internal/service"
	"github.com/strakotou/travel-backend/internal/storage"
)

// CatalogHandler serves the public site: active packages and tickets,
// published news, newest first.
type CatalogHandler struct {
	svc   service.CatalogService
	store storage.ObjectStore
}

func NewCatalogHandler(svc service.CatalogService, store storage.ObjectStore) *CatalogHandler {
	return &CatalogHandler{svc: svc, store: store}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/packages", h.ListPackages)
	api.GET("/packages/:id", h.GetPackage)
	api.GET("/tickets", h.ListTickets)
	api.GET("/news", h.ListNews)
}

func (h *CatalogHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.svc.ListActivePackages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PackageResponse, len(pkgs))
	for i, p := range pkgs {
		resp[i] = dto.ToPackageResponse(&p, h.store.PublicURL(p.ImageKey))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetPackage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}

	pkg, err := h.svc.GetPackage(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "package not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Drafts are admin-only.
	if pkg.Status != models.StatusActive {
		return echo.NewHTTPError(http.StatusNotFound, "package not found")
	}

	return c.JSON(http.StatusOK, dto.ToPackageResponse(pkg, h.store.PublicURL(pkg.ImageKey)))
}

func (h *CatalogHandler) ListTickets(c echo.Context) error {
	tickets, err := h.svc.ListActiveTickets(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = dto.ToTicketResponse(&t)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListNews(c echo.Context) error {
	items, err := h.svc.ListPublishedNews(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.NewsResponse, len(items))
	for i, n := range items {
		resp[i] = dto.ToNewsResponse(&n, h.store.PublicURL(n.PDFKey))
	}
	return c.JSON(http.StatusOK, resp)
}
