package service

import "fmt"

// ConfigError indicates a missing provider credential. It surfaces to the
// caller only as the affected channel failing; the detail is logged at error
// level because it means a deployment misconfiguration, not a data problem.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing provider configuration: %s", e.Missing)
}

// AuthError indicates that bearer token acquisition failed. Body carries the
// provider's raw error response for logging; it is never returned to the
// original caller.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token acquisition failed: %v", e.Err)
	}
	return fmt.Sprintf("token endpoint returned status %d: %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// DeliveryError indicates that a dispatch HTTP call returned non-2xx or
// failed at the transport level. Confined to its own channel.
type DeliveryError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s delivery failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.Status, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
