package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
		{"single slot", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			require.NotNil(t, h)
			assert.Equal(t, tt.expected, h.Cap())
			assert.Equal(t, make([]float64, tt.expected), h.Ordered())
		})
	}
}

func TestHistoryOrdered_Full(t *testing.T) {
	h := NewHistory(5)

	for i := 0; i < 5; i++ {
		h.Push(float64(i * 10))
	}

	assert.Equal(t, []float64{0, 10, 20, 30, 40}, h.Ordered())
}

func TestHistoryOrdered_Wrapped(t *testing.T) {
	h := NewHistory(5)

	// 5 + 3 pushes drop the first 3 values.
	for i := 1; i <= 8; i++ {
		h.Push(float64(i))
	}

	assert.Equal(t, []float64{4, 5, 6, 7, 8}, h.Ordered())
}

func TestHistoryOrdered_Partial(t *testing.T) {
	h := NewHistory(4)

	h.Push(7)
	h.Push(9)

	// Unwritten slots are the oldest zeros.
	assert.Equal(t, []float64{0, 0, 7, 9}, h.Ordered())
}

func TestHistoryOrdered_LengthNeverChanges(t *testing.T) {
	h := NewHistory(3)

	for i := 0; i < 10; i++ {
		assert.Len(t, h.Ordered(), 3)
		h.Push(float64(i))
	}
	assert.Len(t, h.Ordered(), 3)
}

func TestHistoryOrdered_IsCopy(t *testing.T) {
	h := NewHistory(3)
	h.Push(1)

	view := h.Ordered()
	view[2] = 99

	assert.Equal(t, []float64{0, 0, 1}, h.Ordered())
}

func TestHistoryOrdered_ManyWraps(t *testing.T) {
	const n = 50
	h := NewHistory(n)

	for i := 0; i < n*3+7; i++ {
		h.Push(float64(i))
	}

	view := h.Ordered()
	require.Len(t, view, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, float64(n*2+7+i), view[i])
	}
}

func TestHistoryLatest(t *testing.T) {
	h := NewHistory(3)
	assert.Zero(t, h.Latest())

	h.Push(12.5)
	assert.Equal(t, 12.5, h.Latest())

	for _, v := range []float64{1, 2, 3, 4} {
		h.Push(v)
	}
	assert.Equal(t, 4.0, h.Latest())
}

func TestHistorySingleSlot(t *testing.T) {
	h := NewHistory(1)

	h.Push(3)
	h.Push(8)

	assert.Equal(t, []float64{8}, h.Ordered())
	assert.Equal(t, 8.0, h.Latest())
}
