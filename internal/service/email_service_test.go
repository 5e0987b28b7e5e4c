package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caldwellfirm/leadserver/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailTestConfig(baseURL string) *config.Config {
	return &config.Config{
		EmailAPIKey:  "re_test_key",
		EmailAPIBase: baseURL,
		EmailDomain:  "caldwellfirm.com",
	}
}

func TestEmailService_Send(t *testing.T) {
	var captured emailPayload
	var gotAuth, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewEmailService(emailTestConfig(srv.URL))
	err := s.Send(context.Background(), EmailMessage{
		To:      "dana@whitfieldlogistics.com",
		Subject: "Thank you",
		HTML:    "<p>Hi</p>",
		ReplyTo: "intake@caldwellfirm.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Caldwell & Associates <notifications@caldwellfirm.com>", captured.From)
	assert.Equal(t, []string{"dana@whitfieldlogistics.com"}, captured.To)
	assert.Equal(t, "Thank you", captured.Subject)
	assert.Equal(t, "<p>Hi</p>", captured.HTML)
	assert.Equal(t, "intake@caldwellfirm.com", captured.ReplyTo)
}

func TestEmailService_SendOmitsEmptyReplyTo(t *testing.T) {
	var raw map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewEmailService(emailTestConfig(srv.URL))
	require.NoError(t, s.Send(context.Background(), EmailMessage{
		To:      "dana@whitfieldlogistics.com",
		Subject: "Thank you",
		HTML:    "<p>Hi</p>",
	}))

	_, hasReplyTo := raw["reply_to"]
	assert.False(t, hasReplyTo)
}

func TestEmailService_SendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid recipient"}`))
	}))
	defer srv.Close()

	s := NewEmailService(emailTestConfig(srv.URL))
	err := s.Send(context.Background(), EmailMessage{To: "x@y.com", Subject: "s", HTML: "h"})

	var delErr *DeliveryError
	require.ErrorAs(t, err, &delErr)
	assert.Equal(t, http.StatusUnprocessableEntity, delErr.Status)
	assert.Contains(t, delErr.Body, "invalid recipient")
}

func TestEmailService_SendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable provider

	s := NewEmailService(emailTestConfig(srv.URL))
	err := s.Send(context.Background(), EmailMessage{To: "x@y.com", Subject: "s", HTML: "h"})

	var delErr *DeliveryError
	require.ErrorAs(t, err, &delErr)
	assert.Error(t, delErr.Err)
}

func TestEmailService_SendMissingAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := emailTestConfig(srv.URL)
	cfg.EmailAPIKey = ""

	s := NewEmailService(cfg)
	err := s.Send(context.Background(), EmailMessage{To: "x@y.com", Subject: "s", HTML: "h"})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "EMAIL_API_KEY", cfgErr.Missing)
	assert.Zero(t, calls, "no network call should happen without credentials")
}
