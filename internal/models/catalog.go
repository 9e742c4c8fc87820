package models

import "time"

type CatalogStatus string

const (
	StatusActive    CatalogStatus = "active"
	StatusDraft     CatalogStatus = "draft"
	StatusPublished CatalogStatus = "published"
)

type FlightClass string

const (
	ClassEconomy        FlightClass = "economy"
	ClassPremiumEconomy FlightClass = "premium_economy"
	ClassBusiness       FlightClass = "business"
	ClassFirst          FlightClass = "first"
)

func (fc FlightClass) Valid() bool {
	switch fc {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

type TravelPackage struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Price       float64       `gorm:"not null" json:"price"`
	Duration    string        `json:"duration"`
	Location    string        `json:"location"`
	MaxGuests   int           `json:"max_guests"`
	Rating      float64       `json:"rating"`
	Featured    bool          `json:"featured"`
	Status      CatalogStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	ImageKey    string        `json:"image_key,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Ticket struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Origin         string        `gorm:"not null" json:"origin"`
	Destination    string        `gorm:"not null" json:"destination"`
	Price          float64       `gorm:"not null" json:"price"`
	Currency       string        `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	DepartureDate  time.Time     `gorm:"not null" json:"departure_date"`
	ReturnDate     *time.Time    `json:"return_date,omitempty"`
	Airline        string        `json:"airline"`
	FlightClass    FlightClass   `gorm:"type:varchar(20);not null;default:'economy'" json:"flight_class"`
	AvailableSeats int           `json:"available_seats"`
	Status         CatalogStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type NewsItem struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Title     string        `gorm:"not null" json:"title"`
	Excerpt   string        `json:"excerpt"`
	Content   string        `json:"content"`
	Category  string        `json:"category"`
	Status    CatalogStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	PDFKey    string        `json:"pdf_key,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
