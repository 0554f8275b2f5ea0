package logic

// Debouncer confirms a binary input only after a run of identical observations.
// It takes one observation per call and never blocks.
type Debouncer struct {
	required  int // consecutive matching observations needed to commit
	confirmed bool
	candidate bool
	count     int
	raw       bool
	seen      bool
}

// NewDebouncer returns a debouncer that commits after required consecutive
// matching observations. The confirmed state starts false.
func NewDebouncer(required int) *Debouncer {
	return &Debouncer{required: required}
}

// Observe feeds one raw observation and reports whether the confirmed state
// changed as a result.
func (d *Debouncer) Observe(raw bool) bool {
	d.raw = raw
	d.seen = true

	if d.count == 0 || raw != d.candidate {
		// Run broken (or first observation since a commit): restart at 1.
		d.candidate = raw
		d.count = 1
	} else {
		d.count++
	}

	if d.count < d.required {
		return false
	}

	d.count = 0
	if d.confirmed == d.candidate {
		return false
	}
	d.confirmed = d.candidate
	return true
}

// Confirmed returns the debounced state.
func (d *Debouncer) Confirmed() bool {
	return d.confirmed
}

// Raw returns the most recent raw observation and whether any was made.
func (d *Debouncer) Raw() (raw bool, ok bool) {
	return d.raw, d.seen
}

// Majority resolves a batch of raw observations: a unanimous batch returns
// its value, a mixed batch returns true only when more than half are true.
// An empty batch returns false.
func Majority(observations []bool) bool {
	n := 0
	for _, o := range observations {
		if o {
			n++
		}
	}
	return n > len(observations)/2
}
