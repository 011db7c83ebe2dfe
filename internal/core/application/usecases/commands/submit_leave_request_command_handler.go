package commands

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/schedule"
)

// ErrOverlappingRequest is returned when the worker already has a pending or
// approved leave request intersecting the submitted period.
var ErrOverlappingRequest = errors.New("overlapping leave request")

// SubmitLeaveRequestCommandHandler files new leave requests.
// A worker can hold at most one pending or approved request per date:
// overlapping submissions are refused, rejected history never blocks.
// The worker row is locked for the transaction before the overlap check, so
// two concurrent submissions for the same worker serialize and the later one
// sees the earlier insert.
type SubmitLeaveRequestCommandHandler struct {
	uowFactory ScheduleUoWFactory
	clock      func() time.Time
}

// NewSubmitLeaveRequestCommandHandler creates a handler for leave submission.
func NewSubmitLeaveRequestCommandHandler(uowFactory ScheduleUoWFactory,
	clock func() time.Time) SubmitLeaveRequestCommandHandler {
	return SubmitLeaveRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the submission.
// Returns an ObjectNotFoundError for an unknown worker and
// ErrOverlappingRequest when the period collides with a live request.
func (h SubmitLeaveRequestCommandHandler) Handle(ctx context.Context,
	command SubmitLeaveRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WorkerRepository().GetForUpdate(ctx, command.WorkerID()); err != nil {
		return err
	}

	scheduleRepo := uow.ScheduleRepository()

	overlapping, err := scheduleRepo.GetOverlappingLeaveRequests(ctx, command.WorkerID(),
		command.Period())
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return ErrOverlappingRequest
	}

	request, err := schedule.NewLeaveRequest(command.RequestID(), command.WorkerID(),
		command.Period(), command.Reason(), h.clock())
	if err != nil {
		return err
	}

	if err = scheduleRepo.AddLeaveRequest(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
