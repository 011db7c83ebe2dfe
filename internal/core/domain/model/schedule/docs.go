// Package schedule models worker calendars: working days, their time windows,
// and leave requests. Availability on a date means a working day exists for it
// and no approved leave request covers it; the combination is evaluated by the
// scheduling store, this package only holds the building blocks.
package schedule
