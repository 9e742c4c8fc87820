package dto

import (
	"time"

	"github.com/strakotou/travel-backend/internal/models"
)

// BookingResult is the fixed response shape of the notification endpoint.
// Success and failure share the envelope; only one of Message/Error is set.
type BookingResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type PackageResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Duration    string               `json:"duration"`
	Location    string               `json:"location"`
	MaxGuests   int                  `json:"max_guests"`
	Rating      float64              `json:"rating"`
	Featured    bool                 `json:"featured"`
	Status      models.CatalogStatus `json:"status"`
	ImageURL    string               `json:"image_url,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type TicketResponse struct {
	ID             uint                 `json:"id"`
	Origin         string               `json:"origin"`
	Destination    string               `json:"destination"`
	Price          float64              `json:"price"`
	Currency       string               `json:"currency"`
	DepartureDate  time.Time            `json:"departure_date"`
	ReturnDate     *time.Time           `json:"return_date,omitempty"`
	Airline        string               `json:"airline"`
	FlightClass    models.FlightClass   `json:"flight_class"`
	AvailableSeats int                  `json:"available_seats"`
	Status         models.CatalogStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

type NewsResponse struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	Excerpt   string               `json:"excerpt"`
	Content   string               `json:"content"`
	Category  string               `json:"category"`
	Status    models.CatalogStatus `json:"status"`
	PDFURL    string               `json:"pdf_url,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToPackageResponse(p *models.TravelPackage, imageURL string) PackageResponse {
	return PackageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Duration:    p.Duration,
		Location:    p.Location,
		MaxGuests:   p.MaxGuests,
		Rating:      p.Rating,
		Featured:    p.Featured,
		Status:      p.Status,
		ImageURL:    imageURL,
		CreatedAt:   p.CreatedAt,
	}
}

func ToTicketResponse(t *models.Ticket) TicketResponse {
	return TicketResponse{
		ID:             t.ID,
		Origin:         t.Origin,
		Destination:    t.Destination,
		Price:          t.Price,
		Currency:       t.Currency,
		DepartureDate:  t.DepartureDate,
		ReturnDate:     t.ReturnDate,
		Airline:        t.Airline,
		FlightClass:    t.FlightClass,
		AvailableSeats: t.AvailableSeats,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
	}
}

func ToNewsResponse(n *models.NewsItem, pdfURL string) NewsResponse {
	return NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Excerpt:   n.Excerpt,
		Content:   n.Content,
		Category:  n.Category,
		Status:    n.Status,
		PDFURL:    pdfURL,
		CreatedAt: n.CreatedAt,
	}
}
