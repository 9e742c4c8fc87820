package dto

import "time"

type PackageUpsertRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	MaxGuests   int     `json:"max_guests" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Featured    bool    `json:"featured"`
	Status      string  `json:"status"`
	ImageKey    string  `json:"image_key"`
}

type TicketUpsertRequest struct {
	Origin         string     `json:"origin" validate:"required"`
	Destination    string     `json:"destination" validate:"required"`
	Price          float64    `json:"price" validate:"gte=0"`
	Currency       string     `json:"currency"`
	DepartureDate  time.Time  `json:"departure_date" validate:"required"`
	ReturnDate     *time.Time `json:"return_date"`
	Airline        string     `json:"airline"`
	FlightClass    string     `json:"flight_class"`
	AvailableSeats int        `json:"available_seats" validate:"gte=0"`
	Status         string     `json:"status"`
}

type NewsUpsertRequest struct {
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Status   string `json:"status"`
	PDFKey   string `json:"pdf_key"`
}
