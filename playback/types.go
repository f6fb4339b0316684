package playback

import (
	"fmt"
	"iter"
)

// Kind tells which table a Ref.ID indexes.
type Kind uint8

const (
	// KindNode marks a Ref that points at a node id.
	KindNode Kind = iota
	// KindEdge marks a Ref that points at an edge id.
	KindEdge
)

// String returns "node" or "edge".
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Ref is a logical reference to a graph entity.
type Ref struct {
	Kind Kind
	ID   int
}

// NodeRef returns a Ref to node id.
func NodeRef(id int) Ref { return Ref{Kind: KindNode, ID: id} }

// EdgeRef returns a Ref to edge id.
func EdgeRef(id int) Ref { return Ref{Kind: KindEdge, ID: id} }

// IsNode reports whether r points at a node.
func (r Ref) IsNode() bool { return r.Kind == KindNode }

// IsEdge reports whether r points at an edge.
func (r Ref) IsEdge() bool { return r.Kind == KindEdge }

// String renders r as "n3" or "e12".
func (r Ref) String() string {
	if r.Kind == KindEdge {
		return fmt.Sprintf("e%d", r.ID)
	}
	return fmt.Sprintf("n%d", r.ID)
}

// Step is one playback record.
type Step struct {
	// Ref identifies the entity to highlight.
	Ref Ref
	// Final is true when the entity belongs to the result (tree edge, path hop)
	// and false when it was only explored.
	Final bool
}

// Sequence is an ordered, immutable list of steps. The zero value is empty.
type Sequence struct {
	steps []Step
}

// Len returns the number of steps.
func (s Sequence) Len() int { return len(s.steps) }

// At returns the i-th step. It panics on out-of-range i like a slice index.
func (s Sequence) At(i int) Step { return s.steps[i] }

// Steps returns a copy of the steps.
func (s Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)

	return out
}

// All yields (index, step) pairs in order. Breaking out of the loop is a valid
// way to consume a prefix.
func (s Sequence) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, st := range s.steps {
			if !yield(i, st) {
				return
			}
		}
	}
}

// Nodes returns node ids in step order.
func (s Sequence) Nodes() []int {
	return s.collect(KindNode, false)
}

// Edges returns edge ids in step order.
func (s Sequence) Edges() []int {
	return s.collect(KindEdge, false)
}

// FinalEdges returns the ids of edges recorded with Final=true.
func (s Sequence) FinalEdges() []int {
	return s.collect(KindEdge, true)
}

func (s Sequence) collect(kind Kind, finalOnly bool) []int {
	out := make([]int, 0, len(s.steps))
	for _, st := range s.steps {
		if st.Ref.Kind != kind {
			continue
		}
		if finalOnly && !st.Final {
			continue
		}
		out = append(out, st.Ref.ID)
	}

	return out
}
