// Package services provides domain services that orchestrate business rules
// spanning multiple aggregates in the supply chain system.
//
// The package includes:
//   - DemandPolicy: The single source of the order-transition delta table
//     applied to product demand, so the arithmetic is not duplicated across
//     handlers
//   - TruckAllocator: Deterministic, idempotent one-to-one binding of pool
//     trucks to employees
//
// Domain services stay stateless and operate on explicit inputs (snapshots,
// candidate sets) so they remain pure and trivially testable.
package services
