package sim

// TrailPoint is one retained flight-path position.
type TrailPoint struct {
	X float64 `json:"x"`
	Z float64 `json:"z"` // altitude
}

// Trail is a fixed-capacity ring of recent positions. Once full, appending
// evicts the oldest point.
type Trail struct {
	buf  []TrailPoint
	head int // index of the oldest point
	n    int
}

// NewTrail returns a trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Trail{buf: make([]TrailPoint, capacity)}
}

func (t *Trail) Append(p TrailPoint) {
	if t.n < len(t.buf) {
		t.buf[(t.head+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

func (t *Trail) Len() int {
	return t.n
}

func (t *Trail) Cap() int {
	return len(t.buf)
}

// Points returns the retained path oldest-first as a fresh slice.
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}

// Reset drops all points but keeps the capacity.
func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
}
