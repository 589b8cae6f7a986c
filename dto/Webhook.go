package dto

// VerificationEmailRequest is the JSON payload posted to the webhook
type VerificationEmailRequest struct {
	ToEmail          string `json:"toEmail"          validate:"required"`
	VerificationCode string `json:"verificationCode" validate:"required"`
}

// VerificationEmailResponse is returned once the email has been handed off
type VerificationEmailResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

// ErrorResponse is the only failure shape the webhook returns
type ErrorResponse struct {
	Error string `json:"error"`
}
