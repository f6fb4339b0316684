package playback

// Recorder accumulates steps for one algorithm run.
//
// Edge ids are deduplicated: the first Edge call for an id wins and later
// calls are ignored. Node ids are not deduplicated; algorithms decide when a
// node is worth recording.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	steps []Step
	seen  map[int]struct{}
}

// NewRecorder returns a Recorder with room for sizeHint steps.
func NewRecorder(sizeHint int) *Recorder {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Recorder{
		steps: make([]Step, 0, sizeHint),
		seen:  make(map[int]struct{}),
	}
}

// Node appends a node step.
func (r *Recorder) Node(id int, final bool) {
	r.steps = append(r.steps, Step{Ref: NodeRef(id), Final: final})
}

// Edge appends an edge step unless the edge was already recorded.
// It reports whether the step was appended.
func (r *Recorder) Edge(id int, final bool) bool {
	if _, dup := r.seen[id]; dup {
		return false
	}
	r.seen[id] = struct{}{}
	r.steps = append(r.steps, Step{Ref: EdgeRef(id), Final: final})

	return true
}

// Recorded reports whether edge id is already in the sequence.
func (r *Recorder) Recorded(id int) bool {
	_, ok := r.seen[id]
	return ok
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Sequence freezes the recorded steps. The Recorder may keep recording
// afterwards without affecting the returned Sequence.
func (r *Recorder) Sequence() Sequence {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return Sequence{steps: out}
}
