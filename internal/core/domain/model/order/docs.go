// Package order implements the Order aggregate and its supporting value objects.
//
// An order travels through a strict lifecycle: it is created Unclassified,
// receives its Category exactly once (Unclassified -> Unassigned), is bound to
// a worker by the assigner (Unassigned -> Assigned, reassignment supersedes),
// and is finally completed (Assigned -> Finished, terminal).
//
// The aggregate enforces:
//   - at most one active assignment per order
//   - classification recorded once, never recomputed implicitly
//   - immutability after Finished
//
// The version field carried by the aggregate is the optimistic-concurrency
// token used by the postgres repository to reject stale writes, which is how
// two concurrent assignment attempts for the same order are arbitrated.
package order
