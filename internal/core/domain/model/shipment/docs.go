// Package shipment provides the Shipment aggregate. A shipment is one
// delivery run fulfilling an order, executed by an employee with their truck.
//
// The in_transit -> delivered transition happens at most once per shipment;
// the delivery handler keys its exactly-once side effects (order delivered,
// product counters moved into the shipped bucket, truck re-evaluated) on the
// status stored here, not on re-derived history.
package shipment
