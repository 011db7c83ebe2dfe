package commands

import (
	"errors"
	"fmt"
	"strings"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrReviewLeaveRequestCommandIsNotConstructed = errors.New(
	"ReviewLeaveRequestCommand must be created via NewReviewLeaveRequestCommand constructor",
)

// Decision is a reviewer's verdict on a leave request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// DecisionFromString parses a decision value.
func DecisionFromString(s string) (Decision, error) {
	switch Decision(strings.ToLower(s)) {
	case DecisionApprove:
		return DecisionApprove, nil
	case DecisionReject:
		return DecisionReject, nil
	default:
		return "", errs.NewValueIsInvalidError(fmt.Sprintf("decision %q", s))
	}
}

// Validate checks the decision is one of the defined verdicts.
func (d Decision) Validate() error {
	if d != DecisionApprove && d != DecisionReject {
		return errs.NewValueIsInvalidError(fmt.Sprintf("decision %q", string(d)))
	}
	return nil
}

// ReviewLeaveRequestCommand records a manager's decision on a leave request.
type ReviewLeaveRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	reviewerID kernel.UUID
	decision   Decision

	guard guard.ConstructorGuard
}

// NewReviewLeaveRequestCommand creates a command to decide the given request.
func NewReviewLeaveRequestCommand(requestID, reviewerID kernel.UUID,
	decision Decision) (ReviewLeaveRequestCommand, error) {
	command := ReviewLeaveRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setReviewerID(reviewerID),
		command.setDecision(decision),
	); err != nil {
		return ReviewLeaveRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewLeaveRequestCommand) Validate() error {
	return c.guard.Validate(ErrReviewLeaveRequestCommandIsNotConstructed)
}

// RequestID returns the reviewed request's identifier.
func (c ReviewLeaveRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ReviewerID returns the deciding worker's identifier.
func (c ReviewLeaveRequestCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Decision returns the verdict.
func (c ReviewLeaveRequestCommand) Decision() Decision {
	return c.decision
}

func (c *ReviewLeaveRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ReviewLeaveRequestCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}

func (c *ReviewLeaveRequestCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
