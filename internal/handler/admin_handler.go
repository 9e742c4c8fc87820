package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/models"
	"github.com/strakotou/travel-backend/internal/service"
	"github.com/strakotou/travel-backend/internal/storage"
)

// AdminHandler is the content-management surface. Routes are mounted behind
// the admin gate; handlers assume an already-verified admin session.
type AdminHandler struct {
	svc   service.CatalogService
	store storage.ObjectStore
}

func NewAdminHandler(svc service.CatalogService, store storage.ObjectStore) *AdminHandler {
	return &AdminHandler{svc: svc, store: store}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/packages", h.ListPackages)
	g.POST("/packages", h.CreatePackage)
	g.PUT("/packages/:id", h.UpdatePackage)
	g.DELETE("/packages/:id", h.DeletePackage)

	g.GET("/tickets", h.ListTickets)
	g.POST("/tickets", h.CreateTicket)
	g.PUT("/tickets/:id", h.UpdateTicket)
	g.DELETE("/tickets/:id", h.DeleteTicket)

	g.GET("/news", h.ListNews)
	g.POST("/news", h.CreateNews)
	g.PUT("/news/:id", h.UpdateNews)
	g.DELETE("/news/:id", h.DeleteNews)

	g.POST("/uploads", h.Upload)
}

func (h *AdminHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.svc.ListAllPackages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PackageResponse, len(pkgs))
	for i, p := range pkgs {
		resp[i] = dto.ToPackageResponse(&p, h.store.PublicURL(p.ImageKey))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) CreatePackage(c echo.Context) error {
	var req dto.PackageUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	status, err := catalogStatus(req.Status, models.StatusActive)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg := &models.TravelPackage{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Location:    req.Location,
		MaxGuests:   req.MaxGuests,
		Rating:      req.Rating,
		Featured:    req.Featured,
		Status:      status,
		ImageKey:    req.ImageKey,
	}
	if err := h.svc.CreatePackage(c.Request().Context(), pkg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToPackageResponse(pkg, h.store.PublicURL(pkg.ImageKey)))
}

func (h *AdminHandler) UpdatePackage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}

	var req dto.PackageUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	status, err := catalogStatus(req.Status, models.StatusActive)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg := &models.TravelPackage{
		ID:          uint(id),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Location:    req.Location,
		MaxGuests:   req.MaxGuests,
		Rating:      req.Rating,
		Featured:    req.Featured,
		Status:      status,
		ImageKey:    req.ImageKey,
	}
	if err := h.svc.UpdatePackage(c.Request().Context(), pkg); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "package not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToPackageResponse(pkg, h.store.PublicURL(pkg.ImageKey)))
}

func (h *AdminHandler) DeletePackage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}

	if err := h.svc.DeletePackage(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "package not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ListTickets(c echo.Context) error {
	tickets, err := h.svc.ListAllTickets(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = dto.ToTicketResponse(&t)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) CreateTicket(c echo.Context) error {
	ticket, httpErr := h.bindTicket(c, 0)
	if httpErr != nil {
		return httpErr
	}

	if err := h.svc.CreateTicket(c.Request().Context(), ticket); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *AdminHandler) UpdateTicket(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ticket id")
	}

	ticket, httpErr := h.bindTicket(c, uint(id))
	if httpErr != nil {
		return httpErr
	}

	if err := h.svc.UpdateTicket(c.Request().Context(), ticket); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "ticket not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *AdminHandler) DeleteTicket(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ticket id")
	}

	if err := h.svc.DeleteTicket(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "ticket not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ListNews(c echo.Context) error {
	items, err := h.svc.ListAllNews(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.NewsResponse, len(items))
	for i, n := range items {
		resp[i] = dto.ToNewsResponse(&n, h.store.PublicURL(n.PDFKey))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) CreateNews(c echo.Context) error {
	var req dto.NewsUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	status, err := catalogStatus(req.Status, models.StatusDraft)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &models.NewsItem{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Status:   status,
		PDFKey:   req.PDFKey,
	}
	if err := h.svc.CreateNews(c.Request().Context(), item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToNewsResponse(item, h.store.PublicURL(item.PDFKey)))
}

func (h *AdminHandler) UpdateNews(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid news id")
	}

	var req dto.NewsUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	status, err := catalogStatus(req.Status, models.StatusDraft)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &models.NewsItem{
		ID:       uint(id),
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Status:   status,
		PDFKey:   req.PDFKey,
	}
	if err := h.svc.UpdateNews(c.Request().Context(), item); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "news item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToNewsResponse(item, h.store.PublicURL(item.PDFKey)))
}

func (h *AdminHandler) DeleteNews(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid news id")
	}

	if err := h.svc.DeleteNews(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "news item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Upload stores one multipart file under a fresh key and returns its public
// URL. The key goes into the entity on a later create/update call.
func (h *AdminHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := uuid.NewString() + filepath.Ext(file.Filename)
	if err := h.store.Upload(c.Request().Context(), key, contentType, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{
		Key: key,
		URL: h.store.PublicURL(key),
	})
}

func (h *AdminHandler) bindTicket(c echo.Context, id uint) (*models.Ticket, error) {
	var req dto.TicketUpsertRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Origin == "" || req.Destination == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "origin and destination are required")
	}
	if req.DepartureDate.IsZero() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "departure_date is required")
	}

	class := models.FlightClass(req.FlightClass)
	if req.FlightClass == "" {
		class = models.ClassEconomy
	} else if !class.Valid() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid flight_class")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	status, err := catalogStatus(req.Status, models.StatusActive)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return &models.Ticket{
		ID:             id,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Price:          req.Price,
		Currency:       currency,
		DepartureDate:  req.DepartureDate,
		ReturnDate:     req.ReturnDate,
		Airline:        req.Airline,
		FlightClass:    class,
		AvailableSeats: req.AvailableSeats,
		Status:         status,
	}, nil
}

func catalogStatus(s string, fallback models.CatalogStatus) (models.CatalogStatus, error) {
	switch models.CatalogStatus(s) {
	case "":
		return fallback, nil
	case models.StatusActive, models.StatusDraft, models.StatusPublished:
		return models.CatalogStatus(s), nil
	default:
		return "", errors.New("invalid status")
	}
}
