package monitor

import (
	"github.com/rileyhilliard/graphtop/internal/logger"
)

// CounterSnapshot is one reading of the cumulative CPU time-in-state
// counters. Counters never decrease over the life of the OS.
type CounterSnapshot struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
}

// Total is the sum of all seven counters.
func (s CounterSnapshot) Total() uint64 {
	return s.User + s.Nice + s.System + s.Idle + s.IOWait + s.IRQ + s.SoftIRQ
}

// IdleTotal is the time spent not doing work: idle plus iowait.
func (s CounterSnapshot) IdleTotal() uint64 {
	return s.Idle + s.IOWait
}

// MemoryInfo is physical memory in bytes.
type MemoryInfo struct {
	Total uint64
	Free  uint64
}

// Source reads raw counters from the OS.
type Source interface {
	CPUCounters() (CounterSnapshot, error)
	Memory() (MemoryInfo, error)
}

// Sampler turns raw counters into utilization percentages.
//
// CPU utilization is a delta between consecutive snapshots, so a Sampler is
// stateful: use one instance per CPU stream for the whole session. Read
// failures never surface; the affected sample is 0.
type Sampler struct {
	source  Source
	log     logger.Logger
	prev    CounterSnapshot
	hasPrev bool
}

// NewSampler creates a Sampler reading from source.
func NewSampler(source Source, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{source: source, log: log}
}

// CPU returns the CPU utilization since the previous call, in percent.
//
// The first successful read only records a baseline and returns 0. If no
// time elapsed between reads the result is also 0. Counters that go
// backwards are not corrected; the unsigned deltas wrap and the result is
// meaningless for that tick.
func (s *Sampler) CPU() float64 {
	cur, err := s.source.CPUCounters()
	if err != nil {
		s.log.Debug("cpu sample degraded to 0: %v", err)
		return 0
	}

	prev, hadPrev := s.prev, s.hasPrev
	s.prev, s.hasPrev = cur, true

	if !hadPrev {
		return 0
	}

	totalDiff := cur.Total() - prev.Total()
	if totalDiff == 0 {
		return 0
	}
	idleDiff := cur.IdleTotal() - prev.IdleTotal()

	return 100 * (1 - float64(idleDiff)/float64(totalDiff))
}

// Memory returns the share of physical memory in use, in percent.
func (s *Sampler) Memory() float64 {
	m, err := s.source.Memory()
	if err != nil {
		s.log.Debug("memory sample degraded to 0: %v", err)
		return 0
	}

	if m.Total == 0 || m.Free > m.Total {
		s.log.Debug("memory sample degraded to 0: total=%d free=%d", m.Total, m.Free)
		return 0
	}

	return 100 * float64(m.Total-m.Free) / float64(m.Total)
}
