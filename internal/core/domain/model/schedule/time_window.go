package schedule

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// TimeWindow is the daily span of hours a working day covers.
// Hours are whole clock hours in the worker's operating timezone;
// the window end is exclusive (8 to 16 means work from 08:00 until 16:00).
type TimeWindow struct {
	startHour int
	endHour   int
}

// NewTimeWindow creates a TimeWindow from start and end hours.
func NewTimeWindow(startHour, endHour int) (TimeWindow, error) {
	if startHour < 0 || startHour > 23 {
		return TimeWindow{}, errs.NewValueIsOutOfRangeError("startHour", startHour, 0, 23)
	}
	if endHour < 1 || endHour > 24 {
		return TimeWindow{}, errs.NewValueIsOutOfRangeError("endHour", endHour, 1, 24)
	}
	if endHour <= startHour {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("timeWindow",
			fmt.Errorf("end hour %d is not after start hour %d", endHour, startHour))
	}

	return TimeWindow{startHour: startHour, endHour: endHour}, nil
}

// StartHour returns the first working hour of the window.
func (w TimeWindow) StartHour() int {
	return w.startHour
}

// EndHour returns the exclusive end hour of the window.
func (w TimeWindow) EndHour() int {
	return w.endHour
}

// Hours returns the window length in hours.
func (w TimeWindow) Hours() int {
	return w.endHour - w.startHour
}

// IsEqual compares two windows.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w == other
}

// Validate checks the window was built through NewTimeWindow.
func (w TimeWindow) Validate() error {
	if w.startHour == 0 && w.endHour == 0 {
		return errs.NewValueIsRequiredError("TimeWindow must be created via NewTimeWindow")
	}
	return nil
}

// String implements fmt.Stringer, e.g. "08:00-16:00".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.startHour, w.endHour)
}
