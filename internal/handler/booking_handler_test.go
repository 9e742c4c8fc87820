package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/email"
	"github.com/strakotou/travel-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock NotificationService ---

type mockNotificationService struct {
	sendFn func(ctx context.Context, req dto.BookingRequest) error
	calls  int
}

func (m *mockNotificationService) SendBookingRequest(ctx context.Context, req dto.BookingRequest) error {
	m.calls++
	if m.sendFn != nil {
		return m.sendFn(ctx, req)
	}
	return nil
}

// --- Recording email sender for end-to-end cases ---

type recordingSender struct {
	sendFn func(ctx context.Context, msg email.Message) error
	sent   []email.Message
}

func (r *recordingSender) Send(ctx context.Context, msg email.Message) error {
	if r.sendFn != nil {
		if err := r.sendFn(ctx, msg); err != nil {
			return err
		}
	}
	r.sent = append(r.sent, msg)
	return nil
}

func notifyRequest(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/v1/bookings/notify", nil)
	} else {
		req = httptest.NewRequest(method, "/api/v1/bookings/notify", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPreflight_ReturnsCORSHeadersAndEmptyBody(t *testing.T) {
	h := NewBookingHandler(&mockNotificationService{})
	c, rec := notifyRequest(t, http.MethodOptions, "")

	require.NoError(t, h.Preflight(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.Empty(t, rec.Body.String())
}

func TestNotify_Success(t *testing.T) {
	svc := &mockNotificationService{}
	h := NewBookingHandler(svc)

	body := `{"type":"package","customerName":"Alice","customerEmail":"alice@example.com","bookingDetails":{"title":"Mountain Adventure Escape","price":2499,"duration":"7 days","location":"Swiss Alps"}}`
	c, rec := notifyRequest(t, http.MethodPost, body)

	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	var result dto.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Booking request sent successfully", result.Message)
	assert.Equal(t, 1, svc.calls)
}

func TestNotify_MalformedBody_NoSendAttempted(t *testing.T) {
	svc := &mockNotificationService{}
	h := NewBookingHandler(svc)

	c, rec := notifyRequest(t, http.MethodPost, `{"type":`)

	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	var result dto.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0, svc.calls)
}

func TestNotify_UnknownType_NoSendAttempted(t *testing.T) {
	svc := &mockNotificationService{}
	h := NewBookingHandler(svc)

	c, rec := notifyRequest(t, http.MethodPost, `{"type":"cruise","customerName":"A","customerEmail":"a@b.c","bookingDetails":{"title":"X"}}`)

	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestNotify_ServiceFailure(t *testing.T) {
	svc := &mockNotificationService{
		sendFn: func(ctx context.Context, req dto.BookingRequest) error {
			return errors.New("send agency email: provider down")
		},
	}
	h := NewBookingHandler(svc)

	body := `{"type":"package","customerName":"Alice","customerEmail":"alice@example.com","bookingDetails":{"title":"X","price":1}}`
	c, rec := notifyRequest(t, http.MethodPost, body)

	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var result dto.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "provider down")
}

// End-to-end: package booking through the real notification service.
func TestNotify_PackageBooking_EndToEnd(t *testing.T) {
	sender := &recordingSender{}
	svc := service.NewNotificationService(sender, nil, "Strakotou Travel <onboarding@resend.dev>", "estravel@cytanet.com.cy")
	h := NewBookingHandler(svc)

	body := `{"type":"package","customerName":"Alice","customerEmail":"alice@example.com","bookingDetails":{"title":"Mountain Adventure Escape","price":2499,"duration":"7 days","location":"Swiss Alps"}}`
	c, rec := notifyRequest(t, http.MethodPost, body)

	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Booking request sent successfully"}`, rec.Body.String())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, []string{"estravel@cytanet.com.cy"}, sender.sent[0].To)
	assert.Equal(t, []string{"alice@example.com"}, sender.sent[1].To)
}

// End-to-end: ticket booking where the delivery provider rejects the first
// send. The second send must never be attempted.
func TestNotify_TicketBooking_ProviderFailure_EndToEnd(t *testing.T) {
	attempts := 0
	sender := &recordingSender{
		sendFn: func(ctx context.Context, msg email.Message) error {
			attempts++
			return errors.New("rate limited")
		},
	}
	svc := service.NewNotificationService(sender, nil, "Strakotou Travel <onboarding@resend.dev>", "estravel@cytanet.com.cy")
	h := NewBookingHandler(svc)

	body := `{"type":"ticket","customerName":"Bob","customerEmail":"bob@example.com","bookingDetails":{"origin":"Larnaca","destination":"Athens","price":189,"currency":"EUR","departureDate":"2026-09-15","airline":"Cyprus Airways","flightClass":"economy","availableSeats":42}}`
	c, rec := notifyRequest(t, http.MethodPost, body)

	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, attempts)

	var result dto.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "rate limited")
}
