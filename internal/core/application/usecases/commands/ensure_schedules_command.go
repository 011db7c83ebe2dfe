package commands

import (
	"errors"

	"fieldops/internal/pkg/guard"
)

var ErrEnsureSchedulesCommandIsNotConstructed = errors.New(
	"EnsureSchedulesCommand must be created via NewEnsureSchedulesCommand constructor",
)

// EnsureSchedulesCommand tops up every worker's default calendar so the
// rolling horizon stays covered. Parameterless; run daily by the scheduler.
type EnsureSchedulesCommand struct {
	guard guard.ConstructorGuard
}

// NewEnsureSchedulesCommand creates a command to top up all worker calendars.
func NewEnsureSchedulesCommand() EnsureSchedulesCommand {
	return EnsureSchedulesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *EnsureSchedulesCommand) Validate() error {
	return c.guard.Validate(ErrEnsureSchedulesCommandIsNotConstructed)
}
