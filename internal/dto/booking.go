package dto

import (
	"encoding/json"
	"errors"
	"fmt"
)

type BookingType string

const (
	BookingPackage BookingType = "package"
	BookingTicket  BookingType = "ticket"
)

var (
	ErrUnknownBookingType = errors.New("unknown booking type")
	ErrMissingCustomer    = errors.New("customerName and customerEmail are required")
	ErrMissingDetails     = errors.New("bookingDetails is required")
)

// PackageDetails is the snapshot of a travel package embedded in a booking
// request. Wire names mirror the public endpoint contract.
type PackageDetails struct {
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Duration  string  `json:"duration,omitempty"`
	Location  string  `json:"location,omitempty"`
	MaxGuests int     `json:"maxGuests,omitempty"`
}

// TicketDetails is the snapshot of an air-ticket offer embedded in a booking
// request. Dates travel as strings; the service renders them verbatim.
type TicketDetails struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency,omitempty"`
	DepartureDate  string  `json:"departureDate,omitempty"`
	ReturnDate     string  `json:"returnDate,omitempty"`
	Airline        string  `json:"airline,omitempty"`
	FlightClass    string  `json:"flightClass,omitempty"`
	AvailableSeats int     `json:"availableSeats,omitempty"`
}

// BookingRequest is a tagged variant keyed by Type: exactly one of Package or
// Ticket is populated, matching the discriminator.
type BookingRequest struct {
	Type          BookingType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string

	Package *PackageDetails
	Ticket  *TicketDetails
}

type bookingEnvelope struct {
	Type          BookingType     `json:"type"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Message       string          `json:"message,omitempty"`
	Details       json.RawMessage `json:"bookingDetails,omitempty"`
}

func (r *BookingRequest) UnmarshalJSON(data []byte) error {
	var env bookingEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	r.Type = env.Type
	r.CustomerName = env.CustomerName
	r.CustomerEmail = env.CustomerEmail
	r.CustomerPhone = env.CustomerPhone
	r.Message = env.Message
	r.Package = nil
	r.Ticket = nil

	if len(env.Details) == 0 {
		return nil
	}

	switch env.Type {
	case BookingPackage:
		var d PackageDetails
		if err := json.Unmarshal(env.Details, &d); err != nil {
			return fmt.Errorf("decode package details: %w", err)
		}
		r.Package = &d
	case BookingTicket:
		var d TicketDetails
		if err := json.Unmarshal(env.Details, &d); err != nil {
			return fmt.Errorf("decode ticket details: %w", err)
		}
		r.Ticket = &d
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBookingType, env.Type)
	}

	return nil
}

func (r BookingRequest) MarshalJSON() ([]byte, error) {
	env := bookingEnvelope{
		Type:          r.Type,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Message:       r.Message,
	}

	var details any
	switch r.Type {
	case BookingPackage:
		details = r.Package
	case BookingTicket:
		details = r.Ticket
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBookingType, r.Type)
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, err
		}
		env.Details = raw
	}

	return json.Marshal(env)
}

// Validate rejects requests the notification service must not act on. A
// rejected request never triggers a send.
func (r BookingRequest) Validate() error {
	switch r.Type {
	case BookingPackage:
		if r.Package == nil {
			return ErrMissingDetails
		}
	case BookingTicket:
		if r.Ticket == nil {
			return ErrMissingDetails
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBookingType, r.Type)
	}

	if r.CustomerName == "" || r.CustomerEmail == "" {
		return ErrMissingCustomer
	}
	return nil
}

// OfferingIdentity is the human-readable identity used in email subjects:
// the package title, or "origin to destination" for a ticket.
func (r BookingRequest) OfferingIdentity() string {
	if r.Type == BookingPackage && r.Package != nil {
		return r.Package.Title
	}
	if r.Ticket != nil {
		return fmt.Sprintf("%s to %s", r.Ticket.Origin, r.Ticket.Destination)
	}
	return ""
}
