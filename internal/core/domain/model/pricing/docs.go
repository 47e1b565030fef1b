// Package pricing contains the rate-configuration aggregate and the value
// objects exchanged with the price calculator: the calculation request and
// the resulting price breakdown.
//
// Exactly one Configuration is active at any instant; all new price
// calculations resolve against it. Rate maps are keyed by the closed
// kernel.VehicleType enumeration and validated at write time, and walking
// distance surcharges form a step function resolved by closest-lower-bound
// threshold lookup.
package pricing
