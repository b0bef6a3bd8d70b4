// Package entities contains core business entities.
package entities

// DrawMethod enumerates team-draw strategies.
type DrawMethod string

const (
	// DrawRandom partitions by uniform shuffle.
	DrawRandom DrawMethod = "random"
	// DrawOracle delegates balancing to the external oracle.
	DrawOracle DrawMethod = "oracle"
)

// Team is one side produced by a draw. Member order carries no meaning.
type Team struct {
	Players []Player
}

// DrawResult is the outcome of one draw: disjoint teams plus the method that
// actually produced them (oracle requests may resolve as random on fallback).
type DrawResult struct {
	Method DrawMethod
	Teams  []Team
}

// ValidDrawMethod reports whether m is a known draw method.
func ValidDrawMethod(m DrawMethod) bool {
	return m == DrawRandom || m == DrawOracle
}
