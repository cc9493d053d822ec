package rta

// A Builder can build Solvers.
type Builder struct {
	maxIterations int
	hooks         []Hook
}

// MakeBuilder returns a Builder with no iteration cap and no hooks.
func MakeBuilder() Builder {
	return Builder{}
}

// WithMaxIterations caps the number of passes per task. Zero or a negative
// value removes the cap.
func (b Builder) WithMaxIterations(n int) Builder {
	b.maxIterations = n
	return b
}

// WithHook adds a hook to the Solvers built.
func (b Builder) WithHook(h Hook) Builder {
	b.hooks = append(append([]Hook(nil), b.hooks...), h)
	return b
}

// Build creates a new Solver.
func (b Builder) Build() *Solver {
	s := &Solver{
		maxIterations: b.maxIterations,
	}

	for _, h := range b.hooks {
		s.AcceptHook(h)
	}

	return s
}
