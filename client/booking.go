// Package client assembles booking-request payloads from catalog selections
// and submits them to the notification endpoint. One call per submission; a
// failed call is reported to the caller, never retried automatically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/models"
)

const dateLayout = "2006-01-02"

var ErrRequestFailed = errors.New("booking request failed")

// Contact holds the customer-entered form fields. Phone and Message are
// optional and omitted from the payload when unset.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type BookingClient struct {
	baseURL string
	http    *http.Client
}

func NewBookingClient(baseURL string, httpClient *http.Client) *BookingClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BookingClient{baseURL: baseURL, http: httpClient}
}

// RequestPackageBooking normalizes a travel-package selection into a booking
// request and submits it.
func (c *BookingClient) RequestPackageBooking(ctx context.Context, pkg models.TravelPackage, contact Contact) error {
	req := dto.BookingRequest{
		Type:          dto.BookingPackage,
		CustomerName:  contact.Name,
		CustomerEmail: contact.Email,
		CustomerPhone: contact.Phone,
		Message:       contact.Message,
		Package: &dto.PackageDetails{
			Title:     pkg.Title,
			Price:     pkg.Price,
			Duration:  pkg.Duration,
			Location:  pkg.Location,
			MaxGuests: pkg.MaxGuests,
		},
	}
	return c.submit(ctx, req)
}

// RequestTicketBooking normalizes an air-ticket selection into a booking
// request and submits it.
func (c *BookingClient) RequestTicketBooking(ctx context.Context, ticket models.Ticket, contact Contact) error {
	details := &dto.TicketDetails{
		Origin:         ticket.Origin,
		Destination:    ticket.Destination,
		Price:          ticket.Price,
		Currency:       ticket.Currency,
		DepartureDate:  ticket.DepartureDate.Format(dateLayout),
		Airline:        ticket.Airline,
		FlightClass:    string(ticket.FlightClass),
		AvailableSeats: ticket.AvailableSeats,
	}
	if ticket.ReturnDate != nil {
		details.ReturnDate = ticket.ReturnDate.Format(dateLayout)
	}

	req := dto.BookingRequest{
		Type:          dto.BookingTicket,
		CustomerName:  contact.Name,
		CustomerEmail: contact.Email,
		CustomerPhone: contact.Phone,
		Message:       contact.Message,
		Ticket:        details,
	}
	return c.submit(ctx, req)
}

func (c *BookingClient) submit(ctx context.Context, req dto.BookingRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/bookings/notify", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build booking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send booking request: %w", err)
	}
	defer resp.Body.Close()

	var result dto.BookingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode booking response: %w", err)
	}
	if !result.Success {
		if result.Error != "" {
			return fmt.Errorf("%w: %s", ErrRequestFailed, result.Error)
		}
		return ErrRequestFailed
	}

	return nil
}
