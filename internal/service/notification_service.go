package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/caldwellfirm/leadserver/internal/config"
	"github.com/caldwellfirm/leadserver/internal/logging"
)

// Channel identifies one independent delivery path
type Channel string

const (
	ChannelFirmEmail   Channel = "firm_email"
	ChannelClientEmail Channel = "client_email"
	ChannelSMS         Channel = "sms"
)

// Submission is a validated contact/evaluation form submission. It is created
// once per request, never persisted, and discarded after the response.
type Submission struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
	Subject   string
	Message   string
}

// DeliveryOutcome records the terminal state of one channel attempt.
// Err is logged by the orchestrator and never exposed to the caller.
type DeliveryOutcome struct {
	Channel Channel
	Success bool
	Skipped bool // send endpoint never called (missing config or failed auth)
	Err     error
}

// DispatchResult aggregates all channel outcomes. It is only built after
// every channel has settled; Accepted is true whenever validation passed,
// independent of how many channels delivered.
type DispatchResult struct {
	Accepted    bool
	FirmEmail   DeliveryOutcome
	ClientEmail DeliveryOutcome
	SMS         DeliveryOutcome
}

// emailSender abstracts the email provider client for testing
type emailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// smsSender abstracts the SMS provider client for testing
type smsSender interface {
	Send(ctx context.Context, to, text string) error
}

// NotificationService fans a validated submission out to the firm email,
// client email, and SMS channels concurrently, and aggregates the outcomes.
type NotificationService struct {
	email       emailSender
	sms         smsSender
	intakeEmail string
	firmPhone   string
	logger      *logging.Logger
	now         func() time.Time
}

// NewNotificationService creates a new notification orchestrator
func NewNotificationService(cfg *config.Config, email *EmailService, sms *SMSService) *NotificationService {
	return &NotificationService{
		email:       email,
		sms:         sms,
		intakeEmail: cfg.FirmIntakeEmail,
		firmPhone:   cfg.FirmPhone,
		logger:      logging.GetLogger(),
		now:         time.Now,
	}
}

// Dispatch launches all three channels concurrently and waits for every one
// of them to settle. One channel's failure never cancels or delays its
// siblings; there is no shared state between the three attempts, each writes
// its own outcome slot.
func (s *NotificationService) Dispatch(ctx context.Context, sub *Submission) DispatchResult {
	var wg sync.WaitGroup
	var firm, client, sms DeliveryOutcome

	wg.Add(3)
	go func() {
		defer wg.Done()
		err := s.email.Send(ctx, firmNotificationEmail(sub, s.intakeEmail))
		firm = newOutcome(ChannelFirmEmail, err)
	}()
	go func() {
		defer wg.Done()
		err := s.email.Send(ctx, clientConfirmationEmail(sub, s.now()))
		client = newOutcome(ChannelClientEmail, err)
	}()
	go func() {
		defer wg.Done()
		err := s.sms.Send(ctx, sub.Phone, clientConfirmationSMS(sub, s.firmPhone))
		sms = newOutcome(ChannelSMS, err)
	}()
	wg.Wait()

	for _, outcome := range []DeliveryOutcome{firm, client, sms} {
		s.logOutcome(outcome)
	}

	return DispatchResult{
		Accepted:    true,
		FirmEmail:   firm,
		ClientEmail: client,
		SMS:         sms,
	}
}

// newOutcome classifies a channel error. Missing configuration and failed
// token acquisition mean the provider's send endpoint was never called, so
// the outcome is marked skipped rather than attempted-and-failed.
func newOutcome(channel Channel, err error) DeliveryOutcome {
	if err == nil {
		return DeliveryOutcome{Channel: channel, Success: true}
	}

	var configErr *ConfigError
	var authErr *AuthError
	skipped := errors.As(err, &configErr) || errors.As(err, &authErr)

	return DeliveryOutcome{
		Channel: channel,
		Skipped: skipped,
		Err:     err,
	}
}

// logOutcome records each channel's raw result, including provider error
// bodies, for operational visibility. None of this reaches the caller.
func (s *NotificationService) logOutcome(outcome DeliveryOutcome) {
	switch {
	case outcome.Success:
		s.logger.Info("notification channel %s delivered", outcome.Channel)
	case outcome.Skipped:
		s.logger.Warn("notification channel %s skipped, send never attempted: %v", outcome.Channel, outcome.Err)
	default:
		s.logger.Error("notification channel %s failed: %v", outcome.Channel, outcome.Err)
	}
}
