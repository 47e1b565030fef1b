// Package order contains the order aggregate and its lifecycle state machine.
//
// An order is created exactly once with a price breakdown frozen at creation
// time and is then mutated only through lifecycle transitions: confirmation,
// driver assignment, the ordered in-progress phases, completion, and
// cancellation. Orders are never deleted; cancellation is a terminal status.
package order
