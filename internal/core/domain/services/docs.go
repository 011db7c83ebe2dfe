// Package services contains stateless domain services: order classification,
// deterministic worker selection, and default-calendar planning. Each service
// is pure computation over domain model values; transactions, repositories,
// and notifications stay in the application layer.
package services
