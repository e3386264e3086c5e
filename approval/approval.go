/*
Package approval models the supervisor review workflow.

PURPOSE:
  Employees submit a finished timesheet to the approval service; a
  supervisor reviews it and approves it with a signature or rejects it
  with a reason. This package holds the shared submission model and the
  HTTP client used by the employee and supervisor apps.

LIFECYCLE:
  pending -> approved (signature + date recorded)
  pending -> rejected (reason recorded)
  Any submission can be deleted by a supervisor.

SEE ALSO:
  - client.go: HTTP client for the approval service
  - api: the server side of this contract
*/
package approval

import (
	"time"

	"github.com/warp/timeclock-engine/timesheet"
)

// Status is a submission's review state. The tags are a wire contract.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether the tag is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Submission is one timesheet under review.
type Submission struct {
	ID           string              `json:"id"`
	EmployeeName string              `json:"employeeName"`
	PayPeriod    string              `json:"payPeriod"`
	Timesheet    timesheet.Timesheet `json:"timesheet"`
	Status       Status              `json:"status"`
	SubmittedAt  time.Time           `json:"submittedAt"`

	// Approval fields; set only once status is approved.
	SupervisorSignature string `json:"supervisorSignature,omitempty"` // base64 signature image
	SignatureDate       string `json:"supervisorSignatureDate,omitempty"`

	// Rejection field; set only once status is rejected.
	RejectReason string `json:"rejectReason,omitempty"`
}
