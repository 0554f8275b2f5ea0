package logic

// History is a fixed-capacity ring of temperature samples.
// Not safe for concurrent use; the controller owns it.
type History struct {
	buf   []float64
	head  int // next write position
	count int
}

// NewHistory returns an empty history holding at most capacity samples.
// capacity must be positive; config.Validate enforces this.
func NewHistory(capacity int) *History {
	return &History{buf: make([]float64, capacity)}
}

// Push stores a sample, overwriting the oldest once the ring is full.
func (h *History) Push(c float64) {
	h.buf[h.head] = c
	h.head = (h.head + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Average returns the mean of the occupied slots, or 0 when empty.
func (h *History) Average() float64 {
	if h.count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < h.count; i++ {
		sum += h.buf[i]
	}
	return sum / float64(h.count)
}

// Len returns the number of valid samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the ring capacity.
func (h *History) Cap() int {
	return len(h.buf)
}

// Values returns the occupied samples, oldest first.
func (h *History) Values() []float64 {
	if h.count == 0 {
		return nil
	}
	out := make([]float64, h.count)
	// Oldest item is at (head - count) mod capacity
	start := (h.head - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(start+i)%len(h.buf)]
	}
	return out
}
