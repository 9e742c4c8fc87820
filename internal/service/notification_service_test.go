package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock email.Sender ---

type mockSender struct {
	sendFn func(ctx context.Context, msg email.Message) error
	sent   []email.Message
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) error {
	if m.sendFn != nil {
		if err := m.sendFn(ctx, msg); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, msg)
	return nil
}

const (
	testFrom  = "Strakotou Travel <onboarding@resend.dev>"
	testInbox = "estravel@cytanet.com.cy"
)

func packageRequest() dto.BookingRequest {
	return dto.BookingRequest{
		Type:          dto.BookingPackage,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Package: &dto.PackageDetails{
			Title:    "Mountain Adventure Escape",
			Price:    2499,
			Duration: "7 days",
			Location: "Swiss Alps",
		},
	}
}

func ticketRequest() dto.BookingRequest {
	return dto.BookingRequest{
		Type:          dto.BookingTicket,
		CustomerName:  "Bob",
		CustomerEmail: "bob@example.com",
		Ticket: &dto.TicketDetails{
			Origin:         "Larnaca",
			Destination:    "Athens",
			Price:          189,
			Currency:       "EUR",
			DepartureDate:  "2026-09-15",
			Airline:        "Cyprus Airways",
			FlightClass:    "economy",
			AvailableSeats: 42,
		},
	}
}

func TestSendBookingRequest_Package_TwoSendsInOrder(t *testing.T) {
	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	err := svc.SendBookingRequest(context.Background(), packageRequest())

	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	agency := sender.sent[0]
	assert.Equal(t, []string{testInbox}, agency.To)
	assert.Equal(t, "New Travel Package Booking Request - Mountain Adventure Escape", agency.Subject)

	confirmation := sender.sent[1]
	assert.Equal(t, []string{"alice@example.com"}, confirmation.To)
	assert.Equal(t, "Booking Request Confirmation - Mountain Adventure Escape", confirmation.Subject)
	assert.Contains(t, confirmation.HTML, "Dear Alice")
	assert.Contains(t, confirmation.HTML, "Mountain Adventure Escape")
}

func TestSendBookingRequest_Package_DetailsOrderAndPlaceholders(t *testing.T) {
	req := packageRequest()
	req.Package.Duration = "" // must render as N/A, not vanish
	req.Package.Location = ""

	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	require.NoError(t, svc.SendBookingRequest(context.Background(), req))
	require.Len(t, sender.sent, 2)

	html := sender.sent[0].HTML
	assertOrdered(t, html,
		"Package:", "Mountain Adventure Escape",
		"Price:", "$2499",
		"Duration:", "N/A",
		"Location:", "N/A",
		"Max Guests:", "N/A",
	)
}

func TestSendBookingRequest_Ticket_NoReturnDate(t *testing.T) {
	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	require.NoError(t, svc.SendBookingRequest(context.Background(), ticketRequest()))

	html := sender.sent[0].HTML
	assert.NotContains(t, html, "Return:")
	assertOrdered(t, html,
		"Route:", "Larnaca → Athens",
		"Airline:", "Cyprus Airways",
		"Price:", "189 EUR",
		"Class:", "economy",
		"Departure:", "2026-09-15",
		"Available Seats:", "42",
	)
}

func TestSendBookingRequest_Ticket_WithReturnDate(t *testing.T) {
	req := ticketRequest()
	req.Ticket.ReturnDate = "2026-09-22"

	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	require.NoError(t, svc.SendBookingRequest(context.Background(), req))

	html := sender.sent[0].HTML
	assertOrdered(t, html, "Departure:", "2026-09-15", "Return:", "2026-09-22", "Available Seats:")
}

func TestSendBookingRequest_Ticket_CurrencyDefaultsToUSD(t *testing.T) {
	req := ticketRequest()
	req.Ticket.Currency = ""

	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	require.NoError(t, svc.SendBookingRequest(context.Background(), req))
	assert.Contains(t, sender.sent[0].HTML, "189 USD")
}

func TestSendBookingRequest_AgencySendFails_NoConfirmation(t *testing.T) {
	calls := 0
	sender := &mockSender{
		sendFn: func(ctx context.Context, msg email.Message) error {
			calls++
			return errors.New("provider unavailable")
		},
	}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	err := svc.SendBookingRequest(context.Background(), ticketRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider unavailable")
	assert.Equal(t, 1, calls)
	assert.Empty(t, sender.sent)
}

func TestSendBookingRequest_ConfirmationSendFails(t *testing.T) {
	calls := 0
	sender := &mockSender{
		sendFn: func(ctx context.Context, msg email.Message) error {
			calls++
			if calls == 2 {
				return errors.New("mailbox rejected")
			}
			return nil
		},
	}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	err := svc.SendBookingRequest(context.Background(), packageRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox rejected")
	assert.Equal(t, 2, calls)
}

func TestSendBookingRequest_InvalidRequest_ZeroSends(t *testing.T) {
	cases := []struct {
		name string
		req  dto.BookingRequest
	}{
		{"unknown type", dto.BookingRequest{Type: "cruise", CustomerName: "A", CustomerEmail: "a@b.c"}},
		{"missing details", dto.BookingRequest{Type: dto.BookingPackage, CustomerName: "A", CustomerEmail: "a@b.c"}},
		{"missing customer", dto.BookingRequest{Type: dto.BookingPackage, Package: &dto.PackageDetails{Title: "X"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &mockSender{}
			svc := NewNotificationService(sender, nil, testFrom, testInbox)

			err := svc.SendBookingRequest(context.Background(), tc.req)

			assert.Error(t, err)
			assert.Empty(t, sender.sent)
		})
	}
}

func TestSendBookingRequest_MessageBlockOnlyWhenPresent(t *testing.T) {
	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, testFrom, testInbox)

	require.NoError(t, svc.SendBookingRequest(context.Background(), packageRequest()))
	assert.NotContains(t, sender.sent[0].HTML, "Customer Message:")

	req := packageRequest()
	req.Message = "We need a cot for a toddler"
	sender2 := &mockSender{}
	svc2 := NewNotificationService(sender2, nil, testFrom, testInbox)

	require.NoError(t, svc2.SendBookingRequest(context.Background(), req))
	assert.Contains(t, sender2.sent[0].HTML, "Customer Message:")
	assert.Contains(t, sender2.sent[0].HTML, "We need a cot for a toddler")
}

// assertOrdered checks that the given substrings appear in html in the given
// order.
func assertOrdered(t *testing.T, html string, parts ...string) {
	t.Helper()
	pos := 0
	for _, p := range parts {
		idx := strings.Index(html[pos:], p)
		require.GreaterOrEqual(t, idx, 0, "expected %q after position %d", p, pos)
		pos += idx + len(p)
	}
}
