package validation

import (
	"testing"

	"github.com/caldwellfirm/leadserver/internal/api/dto/v1/lead"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func validLead() lead.LeadRequest {
	return lead.LeadRequest{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Company:   "Whitfield Logistics",
		Email:     "dana@whitfieldlogistics.com",
		Phone:     "(310) 744-1328",
		Subject:   "Contract dispute",
		Message:   "We need advice on a vendor contract dispute.",
	}
}

func TestValidateLead_Valid(t *testing.T) {
	v := newValidator()
	req := validLead()

	assert.Nil(t, ValidateLead(v, &req))
}

func TestValidateLead_MissingFields(t *testing.T) {
	v := newValidator()

	tests := []struct {
		field string
		strip func(*lead.LeadRequest)
	}{
		{"firstName", func(r *lead.LeadRequest) { r.FirstName = "" }},
		{"lastName", func(r *lead.LeadRequest) { r.LastName = "" }},
		{"company", func(r *lead.LeadRequest) { r.Company = "" }},
		{"email", func(r *lead.LeadRequest) { r.Email = "" }},
		{"phone", func(r *lead.LeadRequest) { r.Phone = "" }},
		{"subject", func(r *lead.LeadRequest) { r.Subject = "" }},
		{"message", func(r *lead.LeadRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			req := validLead()
			tt.strip(&req)

			err := ValidateLead(v, &req)
			require.NotNil(t, err)
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, "Missing required field: "+tt.field, err.Message)
		})
	}
}

func TestValidateLead_MissingFieldOrderIsDeterministic(t *testing.T) {
	v := newValidator()

	// With several fields absent, the first one in the fixed order wins
	req := validLead()
	req.LastName = ""
	req.Phone = ""
	req.Message = ""

	err := ValidateLead(v, &req)
	require.NotNil(t, err)
	assert.Equal(t, "lastName", err.Field)
}

func TestValidateLead_EmailShapes(t *testing.T) {
	v := newValidator()

	invalid := []string{
		"no-at-sign",
		"user@",
		"@domain.com",
		"user@domain", // no TLD
		"user name@domain.com",
		"user@@domain.com",
	}
	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			req := validLead()
			req.Email = email

			err := ValidateLead(v, &req)
			require.NotNil(t, err)
			assert.Equal(t, "Invalid email address", err.Message)
		})
	}

	req := validLead()
	req.Email = "user@domain.com"
	assert.Nil(t, ValidateLead(v, &req))
}
