package schedule

import (
	"errors"
	"fmt"
	"strings"

	"fieldops/internal/pkg/errs"
)

// ErrAlreadyReviewed is returned when approving or rejecting a leave request
// that has already reached a terminal decision.
var ErrAlreadyReviewed = errors.New("leave request has already been reviewed")

// LeaveStatus is the review state of a leave request.
//
// A request starts Pending and moves exactly once to Approved or Rejected.
// Both decisions are terminal: a reviewed request is never reopened, a worker
// who still needs the time off submits a new request.
type LeaveStatus int

const (
	// LeaveStatusUnknown is the zero value and is not a valid state.
	LeaveStatusUnknown LeaveStatus = iota
	// LeaveStatusPending means the request awaits a manager's decision.
	LeaveStatusPending
	// LeaveStatusApproved means the request blocks availability for its period.
	LeaveStatusApproved
	// LeaveStatusRejected means the request has no effect on availability.
	LeaveStatusRejected
)

func getLeaveStatusStrings() map[LeaveStatus]string {
	return map[LeaveStatus]string{
		LeaveStatusUnknown:  "unknown",
		LeaveStatusPending:  "pending",
		LeaveStatusApproved: "approved",
		LeaveStatusRejected: "rejected",
	}
}

func getValidLeaveStatusStrings() map[string]LeaveStatus {
	return map[string]LeaveStatus{
		"pending":  LeaveStatusPending,
		"approved": LeaveStatusApproved,
		"rejected": LeaveStatusRejected,
	}
}

// LeaveStatusFromString parses a persisted status representation.
func LeaveStatusFromString(s string) (LeaveStatus, error) {
	if status, ok := getValidLeaveStatusStrings()[strings.ToLower(s)]; ok {
		return status, nil
	}
	return LeaveStatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("leave status %q", s))
}

// String implements fmt.Stringer.
func (s LeaveStatus) String() string {
	if str, ok := getLeaveStatusStrings()[s]; ok {
		return str
	}
	return getLeaveStatusStrings()[LeaveStatusUnknown]
}

// Validate checks the status is one of the defined states.
func (s LeaveStatus) Validate() error {
	if _, ok := getValidLeaveStatusStrings()[s.String()]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("leave status %q", s.String()))
	}
	return nil
}

// IsTerminal reports whether the status is a final decision.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// Approve transitions Pending to Approved.
func (s LeaveStatus) Approve() (LeaveStatus, error) {
	if s != LeaveStatusPending {
		return s, fmt.Errorf("%w: cannot approve a %s request", ErrAlreadyReviewed, s)
	}
	return LeaveStatusApproved, nil
}

// Reject transitions Pending to Rejected.
func (s LeaveStatus) Reject() (LeaveStatus, error) {
	if s != LeaveStatusPending {
		return s, fmt.Errorf("%w: cannot reject a %s request", ErrAlreadyReviewed, s)
	}
	return LeaveStatusRejected, nil
}
