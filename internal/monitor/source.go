package monitor

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rileyhilliard/graphtop/internal/monitor/parsers"
)

// Metric source names accepted by NewSource.
const (
	SourceAuto     = "auto"
	SourceSysinfo  = "sysinfo"
	SourceProcfs   = "procfs"
	SourceGopsutil = "gopsutil"
)

const (
	procStatPath    = "/proc/stat"
	procMeminfoPath = "/proc/meminfo"
)

// NewSource returns the metrics source for name. "auto" picks sysinfo on
// Linux and gopsutil everywhere else.
func NewSource(name string) (Source, error) {
	if name == SourceAuto {
		name = SourceGopsutil
		if runtime.GOOS == "linux" {
			name = SourceSysinfo
		}
	}

	switch name {
	case SourceSysinfo:
		if !sysinfoAvailable {
			return nil, fmt.Errorf("sysinfo source needs linux, this is %s", runtime.GOOS)
		}
		return NewSysinfoSource(), nil
	case SourceProcfs:
		return NewProcSource(), nil
	case SourceGopsutil:
		return NewGopsutilSource(), nil
	default:
		return nil, fmt.Errorf("unknown metrics source %q", name)
	}
}

// ProcSource reads CPU counters from /proc/stat. Memory comes from
// /proc/meminfo, or from sysinfo(2) when built with NewSysinfoSource.
type ProcSource struct {
	statPath    string
	meminfoPath string
	readFile    func(name string) ([]byte, error)
	memory      func() (MemoryInfo, error)
}

// NewProcSource reads both metrics from procfs.
func NewProcSource() *ProcSource {
	p := &ProcSource{
		statPath:    procStatPath,
		meminfoPath: procMeminfoPath,
		readFile:    os.ReadFile,
	}
	p.memory = p.meminfo
	return p
}

// NewSysinfoSource reads CPU counters from procfs and memory from the
// sysinfo system call.
func NewSysinfoSource() *ProcSource {
	p := NewProcSource()
	p.memory = sysinfoMemory
	return p
}

// CPUCounters reads the aggregate cpu line of /proc/stat.
func (p *ProcSource) CPUCounters() (CounterSnapshot, error) {
	data, err := p.readFile(p.statPath)
	if err != nil {
		return CounterSnapshot{}, fmt.Errorf("read %s: %w", p.statPath, err)
	}

	c, err := parsers.ParseProcStat(string(data))
	if err != nil {
		return CounterSnapshot{}, err
	}

	return CounterSnapshot{
		User:    c.User,
		Nice:    c.Nice,
		System:  c.System,
		Idle:    c.Idle,
		IOWait:  c.IOWait,
		IRQ:     c.IRQ,
		SoftIRQ: c.SoftIRQ,
	}, nil
}

// Memory returns total and free physical memory.
func (p *ProcSource) Memory() (MemoryInfo, error) {
	return p.memory()
}

func (p *ProcSource) meminfo() (MemoryInfo, error) {
	data, err := p.readFile(p.meminfoPath)
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("read %s: %w", p.meminfoPath, err)
	}

	m, err := parsers.ParseMeminfo(string(data))
	if err != nil {
		return MemoryInfo{}, err
	}

	return MemoryInfo{Total: m.Total, Free: m.Free}, nil
}
