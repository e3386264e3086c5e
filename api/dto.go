/*
dto.go - Request/response data structures

PURPOSE:
  Wire types for the approval API. Field names match what the desktop
  client sends and expects, so they are part of the compatibility
  contract and must not be renamed.
*/
package api

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// LoginRequest authenticates a supervisor.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
}

// SubmitResponse acknowledges a new submission.
type SubmitResponse struct {
	ID string `json:"id"`
}

// ApproveRequest records the supervisor's sign-off.
type ApproveRequest struct {
	SupervisorSignature     string `json:"supervisorSignature"`
	SupervisorSignatureDate string `json:"supervisorSignatureDate"`
}

// RejectRequest records why a submission was sent back.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// SupervisorsResponse lists reviewer display names.
type SupervisorsResponse struct {
	Supervisors []string `json:"supervisors"`
}
