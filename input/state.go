package input

// ActionState is the per-tick Action -> intensity map resource
// Produced by the input collaborator before the control system runs;
// consumed read-only by everything else. Binary inputs resolve to exactly
// 0 or 1; analog sources may take any value in the closed interval.
type ActionState struct {
	values map[Action]float64
}

// NewActionState creates an empty action state
func NewActionState() *ActionState {
	return &ActionState{
		values: make(map[Action]float64, int(actionCount)),
	}
}

// Value returns the current intensity for an action, 0 when absent
func (s *ActionState) Value(a Action) float64 {
	return s.values[a]
}

// Pressed reports whether an action is past the binary threshold
func (s *ActionState) Pressed(a Action) bool {
	return s.values[a] > 0.5
}

// Set stores an intensity, clamped to [0,1]
func (s *ActionState) Set(a Action, v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s.values[a] = v
}

// Reset clears every action to 0
func (s *ActionState) Reset() {
	for a := range s.values {
		delete(s.values, a)
	}
}
