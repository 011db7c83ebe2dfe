package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrSubmitLeaveRequestCommandIsNotConstructed = errors.New(
	"SubmitLeaveRequestCommand must be created via NewSubmitLeaveRequestCommand constructor",
)

// SubmitLeaveRequestCommand files a worker's request for time off.
type SubmitLeaveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	workerID  kernel.UUID
	period    kernel.DateRange
	reason    string

	guard guard.ConstructorGuard
}

// NewSubmitLeaveRequestCommand creates a command to file a leave request over
// the given inclusive period. The reason is free text and optional.
func NewSubmitLeaveRequestCommand(requestID, workerID kernel.UUID, period kernel.DateRange,
	reason string) (SubmitLeaveRequestCommand, error) {
	command := SubmitLeaveRequestCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setWorkerID(workerID),
		command.setPeriod(period),
	); err != nil {
		return SubmitLeaveRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitLeaveRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitLeaveRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new request.
func (c SubmitLeaveRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// WorkerID returns the requesting worker's identifier.
func (c SubmitLeaveRequestCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Period returns the inclusive date range requested off.
func (c SubmitLeaveRequestCommand) Period() kernel.DateRange {
	return c.period
}

// Reason returns the free-text justification.
func (c SubmitLeaveRequestCommand) Reason() string {
	return c.reason
}

func (c *SubmitLeaveRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitLeaveRequestCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *SubmitLeaveRequestCommand) setPeriod(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}

	c.period = period
	return nil
}
