package monitor

import (
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ticksPerSecond converts gopsutil's float seconds back to USER_HZ-style
// integer counters.
const ticksPerSecond = 100

// GopsutilSource reads counters through gopsutil, for platforms without
// procfs.
type GopsutilSource struct {
	times         func(percpu bool) ([]cpu.TimesStat, error)
	virtualMemory func() (*mem.VirtualMemoryStat, error)
}

// NewGopsutilSource creates a GopsutilSource.
func NewGopsutilSource() *GopsutilSource {
	return &GopsutilSource{
		times:         cpu.Times,
		virtualMemory: mem.VirtualMemory,
	}
}

// CPUCounters returns the aggregate CPU times as counters.
func (g *GopsutilSource) CPUCounters() (CounterSnapshot, error) {
	times, err := g.times(false)
	if err != nil {
		return CounterSnapshot{}, fmt.Errorf("cpu times: %w", err)
	}
	if len(times) == 0 {
		return CounterSnapshot{}, fmt.Errorf("cpu times: no data")
	}

	t := times[0]
	return CounterSnapshot{
		User:    toTicks(t.User),
		Nice:    toTicks(t.Nice),
		System:  toTicks(t.System),
		Idle:    toTicks(t.Idle),
		IOWait:  toTicks(t.Iowait),
		IRQ:     toTicks(t.Irq),
		SoftIRQ: toTicks(t.Softirq),
	}, nil
}

// Memory returns total and free physical memory.
func (g *GopsutilSource) Memory() (MemoryInfo, error) {
	vm, err := g.virtualMemory()
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("virtual memory: %w", err)
	}
	return MemoryInfo{Total: vm.Total, Free: vm.Free}, nil
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Round(seconds * ticksPerSecond))
}
