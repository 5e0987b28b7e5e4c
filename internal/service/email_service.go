package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caldwellfirm/leadserver/internal/config"
)

// EmailService sends HTML email through the delivery provider's HTTP API
type EmailService struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

// NewEmailService creates a new email service from the application config
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		apiKey:  cfg.EmailAPIKey,
		baseURL: cfg.EmailAPIBase,
		from:    fmt.Sprintf("Caldwell & Associates <notifications@%s>", cfg.EmailDomain),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// EmailMessage is one outbound email
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// emailPayload represents the provider's send request body
type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Send delivers a single email. Any 2xx response is success; everything else
// is a DeliveryError carrying the provider's response body for logging.
// There are no retries within a single attempt.
func (s *EmailService) Send(ctx context.Context, msg EmailMessage) error {
	if s.apiKey == "" {
		return &ConfigError{Missing: "EMAIL_API_KEY"}
	}

	payload := emailPayload{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	url := s.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &DeliveryError{Provider: "email", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &DeliveryError{
			Provider: "email",
			Status:   resp.StatusCode,
			Body:     string(body),
		}
	}

	return nil
}
