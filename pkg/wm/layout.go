package wm

// Layout is a named algorithm with its tuning parameter.
type Layout struct {
	Name      string
	Algorithm Algorithm
	// Parameter is algorithm specific. For Split it is the fraction of the
	// usable width given to the main view, kept within [0, 1].
	Parameter float64
}

// Adjust adds delta to the parameter and clamps the result to [0, 1].
func (l *Layout) Adjust(delta float64) {
	p := l.Parameter + delta
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	l.Parameter = p
}
