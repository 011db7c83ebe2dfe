package kernel

import (
	"time"

	"fieldops/internal/pkg/errs"
)

// Date truncates a time to its calendar day in UTC.
// All schedule and assignment decisions operate on whole days, so every date
// entering the domain goes through this normalization first.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar day in UTC.
func SameDate(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ErrDateRangeIsNotConstructed is returned when validating a zero-value DateRange.
var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"DateRange must be created via NewDateRange or NewSingleDayRange",
)

// DateRange is a value object describing an inclusive span of calendar days.
// It is the unit in which workers request leave and in which availability
// windows are inspected.
//
// Both bounds are normalized to UTC midnight; the zero value is invalid.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange creates a DateRange covering start through end inclusive.
// Returns an error if either bound is the zero time or end precedes start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("end")
	}

	start, end = Date(start), Date(end)
	if end.Before(start) {
		return DateRange{}, errs.NewValueIsInvalidError("end is before start")
	}

	return DateRange{start: start, end: end}, nil
}

// NewSingleDayRange creates a DateRange covering exactly one calendar day.
func NewSingleDayRange(day time.Time) (DateRange, error) {
	return NewDateRange(day, day)
}

// Start returns the first day of the range.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the last day of the range (inclusive).
func (r DateRange) End() time.Time {
	return r.end
}

// Contains reports whether the given day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	d := Date(day)
	return !d.Before(r.start) && !d.After(r.end)
}

// Overlaps reports whether two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// Days returns every day of the range in ascending order.
func (r DateRange) Days() []time.Time {
	if r.start.IsZero() {
		return nil
	}

	var days []time.Time
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsEqual compares two ranges by their bounds.
func (r DateRange) IsEqual(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// Validate checks that the range was built through a constructor.
func (r DateRange) Validate() error {
	if r.start.IsZero() || r.end.IsZero() {
		return ErrDateRangeIsNotConstructed
	}
	return nil
}
