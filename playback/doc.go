// Package playback defines the ordered, immutable step sequence that graph
// algorithms hand to a renderer.
//
// A Sequence is a list of Steps. Each Step names one logical entity (a node id
// or an edge id) and says whether the entity belongs to the final result of
// the run (a DFS tree edge, a shortest-path hop) or was merely explored.
//
// The order of steps is the animation order. Consumers map each Ref onto a
// visual object of their own and may stop reading at any point:
//
//	for i, step := range seq.All() {
//	    if i == limit {
//	        break
//	    }
//	    render(step.Ref, step.Final)
//	}
//
// Sequences are produced through a Recorder, which enforces that an edge id is
// never recorded twice within one run.
package playback
