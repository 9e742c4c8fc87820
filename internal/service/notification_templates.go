package service

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/strakotou/travel-backend/internal/dto"
)

// Optional offering fields must render as an explicit placeholder, never
// disappear from the layout.
const notAvailable = "N/A"

var agencyTmpl = template.Must(template.New("agency").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px;">
    New {{.OfferingLabel}} Booking Request
  </h2>

  <h3>Customer Information:</h3>
  <ul>
    <li><strong>Name:</strong> {{.CustomerName}}</li>
    <li><strong>Email:</strong> {{.CustomerEmail}}</li>
    {{- if .CustomerPhone}}
    <li><strong>Phone:</strong> {{.CustomerPhone}}</li>
    {{- end}}
  </ul>

  <h3>{{.DetailsHeading}}</h3>
  <ul>
    {{- range .DetailLines}}
    <li><strong>{{.Label}}:</strong> {{.Value}}</li>
    {{- end}}
  </ul>

  {{- if .Message}}
  <h3>Customer Message:</h3>
  <p style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #007bff; margin: 20px 0;">
    {{.Message}}
  </p>
  {{- end}}

  <hr style="margin: 30px 0;">
  <p style="color: #666; font-size: 14px;">
    This booking request was submitted from your Strakotou Travel and Tours website.
    Please contact the customer to confirm availability and complete the booking.
  </p>
</div>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px;">
    Thank you for your booking request!
  </h2>

  <p>Dear {{.CustomerName}},</p>

  <p>We have received your {{.OfferingLabelLower}} booking request for:</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #007bff; margin: 20px 0;">
    <strong>{{.Offering}}</strong>
  </div>

  <p>Our team will review your request and contact you shortly to confirm availability and discuss the next steps.</p>

  <p>If you have any immediate questions, please don't hesitate to contact us at:</p>
  <ul>
    <li>Email: {{.AgencyInbox}}</li>
  </ul>

  <p>Thank you for choosing Strakotou Travel and Tours!</p>

  <p>Best regards,<br>
  The Strakotou Travel Team</p>
</div>
`))

type detailLine struct {
	Label string
	Value string
}

type agencyEmailData struct {
	OfferingLabel  string
	DetailsHeading string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Message        string
	DetailLines    []detailLine
}

type confirmationEmailData struct {
	CustomerName       string
	OfferingLabelLower string
	Offering           string
	AgencyInbox        string
}

// agencySubject includes the offering identity so the inbox is scannable.
func agencySubject(req dto.BookingRequest) string {
	if req.Type == dto.BookingPackage {
		return "New Travel Package Booking Request - " + req.Package.Title
	}
	return fmt.Sprintf("New Air Ticket Booking Request - %s to %s", req.Ticket.Origin, req.Ticket.Destination)
}

func confirmationSubject(req dto.BookingRequest) string {
	return "Booking Request Confirmation - " + req.OfferingIdentity()
}

func renderAgencyEmail(req dto.BookingRequest) (string, error) {
	data := agencyEmailData{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
	}

	if req.Type == dto.BookingPackage {
		data.OfferingLabel = "Travel Package"
		data.DetailsHeading = "Package Details:"
		data.DetailLines = packageLines(*req.Package)
	} else {
		data.OfferingLabel = "Air Ticket"
		data.DetailsHeading = "Flight Details:"
		data.DetailLines = ticketLines(*req.Ticket)
	}

	var b strings.Builder
	if err := agencyTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render agency email: %w", err)
	}
	return b.String(), nil
}

func renderConfirmationEmail(req dto.BookingRequest, agencyInbox string) (string, error) {
	data := confirmationEmailData{
		CustomerName: req.CustomerName,
		AgencyInbox:  agencyInbox,
	}
	if req.Type == dto.BookingPackage {
		data.OfferingLabelLower = "travel package"
		data.Offering = req.Package.Title
	} else {
		data.OfferingLabelLower = "air ticket"
		data.Offering = fmt.Sprintf("%s → %s", req.Ticket.Origin, req.Ticket.Destination)
	}

	var b strings.Builder
	if err := confirmationTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}
	return b.String(), nil
}

// packageLines enumerates package fields in fixed order: title, price,
// duration, location, max guests.
func packageLines(d dto.PackageDetails) []detailLine {
	return []detailLine{
		{"Package", orNA(d.Title)},
		{"Price", "$" + formatPrice(d.Price)},
		{"Duration", orNA(d.Duration)},
		{"Location", orNA(d.Location)},
		{"Max Guests", intOrNA(d.MaxGuests)},
	}
}

// ticketLines enumerates ticket fields in fixed order: route, airline, price,
// class, departure, return (only when present), available seats.
func ticketLines(d dto.TicketDetails) []detailLine {
	currency := d.Currency
	if currency == "" {
		currency = "USD"
	}

	lines := []detailLine{
		{"Route", fmt.Sprintf("%s → %s", d.Origin, d.Destination)},
		{"Airline", orNA(d.Airline)},
		{"Price", formatPrice(d.Price) + " " + currency},
		{"Class", orNA(d.FlightClass)},
		{"Departure", orNA(d.DepartureDate)},
	}
	if d.ReturnDate != "" {
		lines = append(lines, detailLine{"Return", d.ReturnDate})
	}
	lines = append(lines, detailLine{"Available Seats", intOrNA(d.AvailableSeats)})
	return lines
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func intOrNA(n int) string {
	if n == 0 {
		return notAvailable
	}
	return strconv.Itoa(n)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
