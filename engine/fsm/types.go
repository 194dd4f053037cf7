package fsm

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a flat, tick-driven finite state machine.
// T is the context type passed to actions and guards (e.g., *engine.State)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	// Runtime state
	active StateID
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	// Terminal nodes ignore further ticks
	Terminal bool

	OnEnter []ActionFunc[T]

	// Transitions are evaluated in insertion order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a guarded link evaluated on every tick
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
