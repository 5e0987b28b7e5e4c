package validation

import (
	"regexp"

	"github.com/caldwellfirm/leadserver/internal/api/dto/v1/lead"

	"github.com/go-playground/validator/v10"
)

// emailRegex is deliberately minimal: exactly one "@", at least one "." in
// the domain part, and no whitespace. Anything stricter rejects real
// addresses; anything looser lets through values the email provider bounces.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// requiredFields is the fixed field order used when reporting the first
// missing field. Order matters for deterministic error messages.
var requiredFields = []string{
	"firstName",
	"lastName",
	"company",
	"email",
	"phone",
	"subject",
	"message",
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("lead_email", validateEmail)
}

// validateEmail checks if the email has a plausible shape
func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// ValidationError names the first problem found in a submission
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateLead checks a submission for required fields and email shape.
// It returns nil for a valid submission, or a ValidationError describing the
// first problem found. No normalization is performed here; formatting belongs
// to the dispatch channel that needs it.
func ValidateLead(v *validator.Validate, req *lead.LeadRequest) *ValidationError {
	values := map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"company":   req.Company,
		"email":     req.Email,
		"phone":     req.Phone,
		"subject":   req.Subject,
		"message":   req.Message,
	}

	for _, field := range requiredFields {
		if values[field] == "" {
			return &ValidationError{
				Field:   field,
				Message: "Missing required field: " + field,
			}
		}
	}

	if err := v.Var(req.Email, "lead_email"); err != nil {
		return &ValidationError{
			Field:   "email",
			Message: "Invalid email address",
		}
	}

	return nil
}
