package lead

// LeadRequest represents a contact/evaluation form submission.
// All fields are required; the validation middleware reports the first
// missing field in this exact order.
type LeadRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// NotificationFlags reports per-channel delivery results to the caller.
// A false flag means that channel failed (or was skipped); the request as a
// whole is still accepted.
type NotificationFlags struct {
	FirmEmail   bool `json:"firmEmail"`
	ClientEmail bool `json:"clientEmail"`
	SMS         bool `json:"sms"`
}

// LeadResponse is returned after an accepted submission
type LeadResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Notifications NotificationFlags `json:"notifications"`
}
