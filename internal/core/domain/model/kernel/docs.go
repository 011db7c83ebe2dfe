// Package kernel contains shared value objects used across all domain aggregates.
//
// The kernel provides the building blocks the rest of the domain model is
// expressed in:
//   - UUID: validated entity identifiers backed by github.com/google/uuid
//   - DateRange and the Date/SameDate/IsWeekday helpers: calendar-day
//     arithmetic for schedules, leave requests, and assignment decisions
//
// All kernel types are immutable value objects. Zero values are invalid and
// rejected by their Validate methods; instances must be created through the
// package's constructor functions.
package kernel
