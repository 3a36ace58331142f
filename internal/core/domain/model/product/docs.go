// Package product provides the Product aggregate, the entity that holds the
// derived inventory counters of the supply chain: total required quantity
// accumulated from active orders, total shipped quantity, and the supply
// status derived from demand versus available stock.
//
// The package includes:
//   - Product: The aggregate root exposing the only mutation API for the
//     demand and shipped counters (AdjustRequired, RecordShipped)
//   - Status: The derived supply state with DeriveStatus as its single source
//
// Key business rules:
//   - total_required_quantity is clamped at a floor of 0, never negative
//   - total_shipped only grows, and only through shipment delivery
//   - status is on_demand iff total_required_quantity > available_quantity,
//     recomputed after every mutation of either operand and set nowhere else
//
// All other entities reference products; none of them touch these counters
// directly. Handlers route every change through this aggregate so the
// invariants are enforced in one place.
package product
