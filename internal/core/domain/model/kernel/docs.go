// Package kernel contains shared value objects used across the domain model:
// identifiers and money amounts. Value objects here are immutable, validate
// themselves on construction, and carry no behavior beyond their own
// invariants. Aggregates in the order, bid, and participant packages build
// on these primitives.
package kernel
