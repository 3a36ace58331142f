// Package truck provides the Truck aggregate, the leaf resource of the truck
// pool. Trucks toggle availability only through employee lifecycle and
// shipment delivery events; claims are guarded so a truck is bound to at most
// one employee at any time.
package truck
