package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caldwellfirm/leadserver/internal/config"
)

// jwtBearerGrant is the OAuth2 grant type for the provider's JWT-bearer flow
const jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// SMSService sends text messages through the delivery provider's HTTP API.
// Each send acquires its own short-lived bearer token; tokens are never
// cached across requests.
type SMSService struct {
	clientID     string
	clientSecret string
	assertion    string
	baseURL      string
	from         string
	client       *http.Client
}

// NewSMSService creates a new SMS service from the application config
func NewSMSService(cfg *config.Config) *SMSService {
	return &SMSService{
		clientID:     cfg.SMSClientID,
		clientSecret: cfg.SMSClientSecret,
		assertion:    cfg.SMSAssertion,
		baseURL:      cfg.SMSServerBase,
		from:         cfg.SMSFromNumber,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// tokenResponse represents the token endpoint's success body
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// smsPhone wraps a phone number the way the provider's API expects
type smsPhone struct {
	PhoneNumber string `json:"phoneNumber"`
}

// smsPayload represents the provider's send request body
type smsPayload struct {
	From smsPhone   `json:"from"`
	To   []smsPhone `json:"to"`
	Text string     `json:"text"`
}

// acquireToken exchanges the signed JWT assertion for a short-lived bearer
// token. The token is owned by the single send attempt that requested it and
// is discarded immediately after use or failure.
func (s *SMSService) acquireToken(ctx context.Context) (string, error) {
	switch {
	case s.clientID == "":
		return "", &ConfigError{Missing: "SMS_CLIENT_ID"}
	case s.clientSecret == "":
		return "", &ConfigError{Missing: "SMS_CLIENT_SECRET"}
	case s.assertion == "":
		return "", &ConfigError{Missing: "SMS_JWT_ASSERTION"}
	case s.baseURL == "":
		return "", &ConfigError{Missing: "SMS_SERVER_BASE"}
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", s.assertion)

	endpoint := s.baseURL + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("failed to create token request: %w", err)}
	}

	req.SetBasicAuth(s.clientID, s.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", &AuthError{Err: fmt.Errorf("malformed token response: %w", err)}
	}
	if token.AccessToken == "" {
		return "", &AuthError{Status: resp.StatusCode, Body: string(body), Err: fmt.Errorf("token response missing access_token")}
	}

	return token.AccessToken, nil
}

// Send composes and delivers one text message. Token acquisition happens
// first; if it fails, the send endpoint is never called and the error is
// reported as the channel being skipped.
func (s *SMSService) Send(ctx context.Context, to, text string) error {
	if s.from == "" {
		return &ConfigError{Missing: "SMS_FROM_NUMBER"}
	}

	token, err := s.acquireToken(ctx)
	if err != nil {
		return err
	}

	payload := smsPayload{
		From: smsPhone{PhoneNumber: s.from},
		To:   []smsPhone{{PhoneNumber: NormalizePhone(to)}},
		Text: text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sms payload: %w", err)
	}

	endpoint := s.baseURL + "/v1/sms/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create sms request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &DeliveryError{Provider: "sms", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &DeliveryError{
			Provider: "sms",
			Status:   resp.StatusCode,
			Body:     string(body),
		}
	}

	return nil
}

// NormalizePhone converts a user-entered phone number into a best-effort
// E.164-ish form: strip everything that is not a digit, prefix bare ten-digit
// numbers with the US country code, and otherwise just ensure a leading "+".
// Numbers malformed in other ways pass through and fail at the provider.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if len(cleaned) == 10 {
		return "+1" + cleaned
	}
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	return "+" + cleaned
}
