package service

import (
	"context"
	"fmt"
	"log"

	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/email"
	"github.com/strakotou/travel-backend/pkg/rabbitmq"
)

// NotificationService dispatches the two booking emails: agency first, then
// the customer confirmation. All-or-nothing: a first-send failure aborts the
// second and the whole operation is reported failed.
type NotificationService interface {
	SendBookingRequest(ctx context.Context, req dto.BookingRequest) error
}

type notificationService struct {
	sender      email.Sender
	publisher   *rabbitmq.Publisher
	from        string
	agencyInbox string
}

func NewNotificationService(sender email.Sender, publisher *rabbitmq.Publisher, from, agencyInbox string) NotificationService {
	return &notificationService{
		sender:      sender,
		publisher:   publisher,
		from:        from,
		agencyInbox: agencyInbox,
	}
}

func (s *notificationService) SendBookingRequest(ctx context.Context, req dto.BookingRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid booking request: %w", err)
	}

	log.Printf("[Notify] processing %s booking request from %s <%s>", req.Type, req.CustomerName, req.CustomerEmail)

	agencyHTML, err := renderAgencyEmail(req)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, email.Message{
		From:    s.from,
		To:      []string{s.agencyInbox},
		Subject: agencySubject(req),
		HTML:    agencyHTML,
	}); err != nil {
		return fmt.Errorf("send agency email: %w", err)
	}
	log.Printf("[Notify] agency email sent for %q", req.OfferingIdentity())

	// The confirmation is only attempted once the agency is notified.
	confirmationHTML, err := renderConfirmationEmail(req, s.agencyInbox)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, email.Message{
		From:    s.from,
		To:      []string{req.CustomerEmail},
		Subject: confirmationSubject(req),
		HTML:    confirmationHTML,
	}); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	log.Printf("[Notify] confirmation email sent to %s", req.CustomerEmail)

	// Audit event for downstream consumers; never affects the response.
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.requested", req)
	}

	return nil
}
