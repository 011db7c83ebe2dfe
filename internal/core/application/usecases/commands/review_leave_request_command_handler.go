package commands

import (
	"context"
	"errors"

	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// ErrForbidden is returned when the reviewer does not hold the manager role.
var ErrForbidden = errors.New("reviewer is not a manager")

// ReviewLeaveRequestCommandHandler decides pending leave requests.
//
// The manager gate runs against the worker pool via the injected RoleChecker,
// not against any session state. An approval commits the status change and
// the resulting unavailability in one transaction: availability checks read
// approved requests directly, so there is no separate calendar write to tear.
// The requester's worker row is locked before the decision is applied, which
// serializes the review against any in-flight assignment reading that
// worker's availability — whichever commits first is authoritative for the
// other's subsequent read.
type ReviewLeaveRequestCommandHandler struct {
	uowFactory  ScheduleUoWFactory
	roleChecker ports.RoleChecker
	notifier    ports.Notifier
}

// NewReviewLeaveRequestCommandHandler creates a handler for leave review.
// The notifier may be nil; decision notifications are best effort.
func NewReviewLeaveRequestCommandHandler(uowFactory ScheduleUoWFactory,
	roleChecker ports.RoleChecker, notifier ports.Notifier) ReviewLeaveRequestCommandHandler {
	return ReviewLeaveRequestCommandHandler{
		uowFactory:  uowFactory,
		roleChecker: roleChecker,
		notifier:    notifier,
	}
}

// Handle processes the review.
// Returns ErrForbidden for a non-manager or unknown reviewer, an
// ObjectNotFoundError for an unknown request, and schedule.ErrAlreadyReviewed
// for a decided one.
func (h ReviewLeaveRequestCommandHandler) Handle(ctx context.Context,
	command ReviewLeaveRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	isManager, err := h.roleChecker.IsManager(ctx, command.ReviewerID())
	if err != nil {
		// An unknown reviewer is not a manager; don't let the lookup failure
		// masquerade as a missing leave request.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !isManager {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()

	request, err := scheduleRepo.GetLeaveRequest(ctx, command.RequestID())
	if err != nil {
		return err
	}

	requester, err := uow.WorkerRepository().GetForUpdate(ctx, request.WorkerID())
	if err != nil {
		return err
	}

	// Re-read under the worker lock so the decision applies to the current
	// state of the request, not the pre-lock snapshot.
	request, err = scheduleRepo.GetLeaveRequest(ctx, command.RequestID())
	if err != nil {
		return err
	}

	switch command.Decision() {
	case DecisionApprove:
		err = request.Approve(command.ReviewerID())
	case DecisionReject:
		err = request.Reject(command.ReviewerID())
	default:
		err = command.Decision().Validate()
	}
	if err != nil {
		return err
	}

	if err = scheduleRepo.UpdateLeaveRequest(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		_ = h.notifier.NotifyLeaveReviewed(ctx, request, requester)
	}

	return nil
}
