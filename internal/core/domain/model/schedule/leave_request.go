package schedule

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrLeaveRequestIsNotConstructed is returned when using an improperly initialized LeaveRequest.
var ErrLeaveRequestIsNotConstructed = errors.New(
	"LeaveRequest must be created via NewLeaveRequest or RestoreLeaveRequest constructor")

// LeaveRequest is a worker's petition for time off over an inclusive date range.
//
// The request is the unit of review: a manager approves or rejects the whole
// range in one decision. Only an approved request affects availability; pending
// and rejected requests are inert. Reviewed requests keep the reviewer's
// identity for the audit trail.
type LeaveRequest struct {
	id         kernel.UUID
	workerID   kernel.UUID
	period     kernel.DateRange
	reason     string
	status     LeaveStatus
	reviewedBy *kernel.UUID
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewLeaveRequest creates a pending request for the given worker and period.
// The reason is free text and optional. submittedAt orders the review queue.
func NewLeaveRequest(id, workerID kernel.UUID, period kernel.DateRange, reason string,
	submittedAt time.Time) (*LeaveRequest, error) {
	r := &LeaveRequest{
		reason: reason,
		status: LeaveStatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setWorkerID(workerID),
		r.setPeriod(period),
		r.setCreatedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreLeaveRequest reconstructs a LeaveRequest from persistence.
func RestoreLeaveRequest(id, workerID kernel.UUID, period kernel.DateRange, reason string,
	status LeaveStatus, reviewedBy *kernel.UUID, createdAt time.Time) (*LeaveRequest, error) {
	r := &LeaveRequest{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setWorkerID(workerID),
		r.setPeriod(period),
		r.setStatus(status),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if status.IsTerminal() {
		if reviewedBy == nil {
			return nil, errs.NewValueIsRequiredError("reviewedBy")
		}
		if err := reviewedBy.Validate(); err != nil {
			return nil, err
		}
		reviewer := *reviewedBy
		r.reviewedBy = &reviewer
	} else if reviewedBy != nil {
		return nil, errs.NewValueIsInvalidError("reviewedBy must be empty for a pending request")
	}

	return r, nil
}

// Validate ensures the LeaveRequest was constructed through a constructor.
func (r *LeaveRequest) Validate() error {
	if r == nil {
		return ErrLeaveRequestIsNotConstructed
	}
	return r.guard.Validate(ErrLeaveRequestIsNotConstructed)
}

// IsEqual compares two requests by their unique identifiers.
func (r *LeaveRequest) IsEqual(other *LeaveRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *LeaveRequest) ID() kernel.UUID {
	return r.id
}

// WorkerID returns the requesting worker's identifier.
func (r *LeaveRequest) WorkerID() kernel.UUID {
	return r.workerID
}

// Period returns the inclusive date range the request covers.
func (r *LeaveRequest) Period() kernel.DateRange {
	return r.period
}

// Reason returns the worker's free-text justification.
func (r *LeaveRequest) Reason() string {
	return r.reason
}

// Status returns the request's review state.
func (r *LeaveRequest) Status() LeaveStatus {
	return r.status
}

// ReviewedBy returns the reviewer's identifier, or nil while pending.
func (r *LeaveRequest) ReviewedBy() *kernel.UUID {
	if r.reviewedBy == nil {
		return nil
	}
	reviewer := *r.reviewedBy
	return &reviewer
}

// CreatedAt returns the submission time.
func (r *LeaveRequest) CreatedAt() time.Time {
	return r.createdAt
}

// IsApproved reports whether the request blocks availability.
func (r *LeaveRequest) IsApproved() bool {
	return r.status == LeaveStatusApproved
}

// Covers reports whether the request's period contains the given date.
func (r *LeaveRequest) Covers(date time.Time) bool {
	return r.period.Contains(date)
}

// Overlaps reports whether this request's period intersects another period.
func (r *LeaveRequest) Overlaps(period kernel.DateRange) bool {
	return r.period.Overlaps(period)
}

// Approve records a terminal approval by the given reviewer.
// Returns ErrAlreadyReviewed if a decision was already made.
func (r *LeaveRequest) Approve(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	status, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = status
	r.reviewedBy = &reviewerID
	return nil
}

// Reject records a terminal rejection by the given reviewer.
// Returns ErrAlreadyReviewed if a decision was already made.
func (r *LeaveRequest) Reject(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	status, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = status
	r.reviewedBy = &reviewerID
	return nil
}

func (r *LeaveRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *LeaveRequest) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	r.workerID = workerID
	return nil
}

func (r *LeaveRequest) setPeriod(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}
	r.period = period
	return nil
}

func (r *LeaveRequest) setStatus(status LeaveStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *LeaveRequest) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
