// Package worker models the field-worker pool consumed by the assignment core.
// Workers are provisioned externally and read-only here; the core inspects
// roles (for the leave-review gate) and capability tags (for candidate
// filtering) but never mutates them.
package worker
