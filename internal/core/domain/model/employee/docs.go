// Package employee provides the Employee aggregate. Employees execute
// shipments and hold at most one truck from the pool, a nullable and
// exclusive binding driven by the employee lifecycle: hiring claims a truck
// when one is free, dismissal releases it unconditionally.
package employee
