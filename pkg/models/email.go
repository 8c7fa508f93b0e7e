// pkg/models/email.go
package models

// EmailResult is the reply of the order email endpoints.
type EmailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	OrderID string `json:"order_id"`
	Email   string `json:"email,omitempty"`
	Details string `json:"details,omitempty"` // raw provider response on rejection
}

// TestEmailRequest is the optional body of POST /test-email.
type TestEmailRequest struct {
	TestEmail string `json:"test_email"`
}
