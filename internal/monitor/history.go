package monitor

// DefaultHistorySize is the number of samples kept per metric, one per
// graph column.
const DefaultHistorySize = 50

// History is a fixed-size ring of samples for one metric.
//
// It always holds exactly Cap() values, starting as zeros. Push overwrites
// the oldest value. History is not safe for concurrent use; the dashboard
// loop owns it.
type History struct {
	data   []float64
	cursor int
}

// NewHistory creates a zero-filled history with the given capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{data: make([]float64, size)}
}

// Push records a sample, overwriting the oldest one.
func (h *History) Push(value float64) {
	h.data[h.cursor] = value
	h.cursor = (h.cursor + 1) % len(h.data)
}

// Ordered returns all samples oldest first. The result is a copy.
func (h *History) Ordered() []float64 {
	n := len(h.data)
	result := make([]float64, n)

	// cursor is the next write position, so it also holds the oldest value.
	for i := 0; i < n; i++ {
		result[i] = h.data[(h.cursor-n+i+n)%n]
	}

	return result
}

// Latest returns the most recently pushed sample (0 before any push).
func (h *History) Latest() float64 {
	n := len(h.data)
	return h.data[(h.cursor-1+n)%n]
}

// Cap returns the number of samples held.
func (h *History) Cap() int {
	return len(h.data)
}
