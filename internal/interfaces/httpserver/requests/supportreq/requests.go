package supportreq

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// SupportRequest carries a user support message and the address to answer.
type SupportRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// HasRequiredFields reports whether both fields are present.
func (r *SupportRequest) HasRequiredFields() bool {
	return r.Email != "" && r.Message != ""
}

// ValidEmail reports whether the email field parses as an address.
func (r *SupportRequest) ValidEmail() bool {
	return validate.Var(r.Email, "required,email") == nil
}
