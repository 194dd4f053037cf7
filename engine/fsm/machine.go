package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		OnEnter:     make([]ActionFunc[T], 0),
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID, targetID StateID, guard GuardFunc[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, Transition[T]{TargetID: targetID, Guard: guard})
	}
}

// Init validates the graph and enters the initial state
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	for _, n := range m.nodes {
		for _, trans := range n.Transitions {
			if _, ok := m.nodes[trans.TargetID]; !ok {
				return fmt.Errorf("state %s transitions to unknown state %d", n.Name, trans.TargetID)
			}
		}
	}

	m.active = initial
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update follows passing transitions out of the current state.
// Transitions chain within one tick so a single update can cross several states,
// bounded by the node count to rule out guard cycles.
func (m *Machine[T]) Update(ctx T) {
	node, ok := m.nodes[m.active]
	if !ok || node.Terminal {
		return
	}

	for hops := 0; hops < len(m.nodes); hops++ {
		target, fired := m.nextState(ctx, node)
		if !fired {
			return
		}
		m.enter(ctx, target)
		node = m.nodes[target]
		if node.Terminal {
			return
		}
	}
}

func (m *Machine[T]) nextState(ctx T, node *Node[T]) (StateID, bool) {
	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			return trans.TargetID, true
		}
	}
	return StateNone, false
}

func (m *Machine[T]) enter(ctx T, target StateID) {
	if target == m.active {
		return
	}
	m.active = target
	for _, action := range m.nodes[target].OnEnter {
		action(ctx)
	}
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.active
}

// Done reports whether the machine sits in a terminal state
func (m *Machine[T]) Done() bool {
	n, ok := m.nodes[m.active]
	return ok && n.Terminal
}
