// Package order provides the Order aggregate and its status state machine.
// Orders are placed by retailers against products; their status transitions
// are the events that drive the product demand counter.
//
// The package includes:
//   - Order: The aggregate root managing identity, quantity, and lifecycle
//   - Status: A state machine over pending, allocated, delivered, cancelled
//   - Snapshot: An explicit value capturing the demand-relevant state before
//     and after a write, passed to the demand policy instead of hidden
//     instance state
//
// Key business rules:
//   - Orders reference exactly one product for their lifetime
//   - Required quantity is always positive
//   - Pending and allocated orders contribute to product demand; delivered
//     and cancelled orders do not
//   - Terminal orders may be reopened, returning their quantity to demand
package order
