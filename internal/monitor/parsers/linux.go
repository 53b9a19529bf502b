package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// CPUFieldCount is the number of time-in-state counters read from the
// aggregate cpu line: user nice system idle iowait irq softirq.
const CPUFieldCount = 7

// CPUCounters holds cumulative time-in-state counters (in USER_HZ ticks)
// from the aggregate "cpu" line of /proc/stat.
type CPUCounters struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
}

// Meminfo holds the /proc/meminfo fields graphtop cares about, in bytes.
type Meminfo struct {
	Total uint64
	Free  uint64
}

// ParseProcStat parses the aggregate CPU counters from /proc/stat output.
// Per-core lines (cpu0, cpu1, ...) are ignored. Counters after softirq
// (steal, guest, guest_nice) are not part of the snapshot.
func ParseProcStat(procStat string) (CPUCounters, error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < CPUFieldCount+1 {
			return CPUCounters{}, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}

		var vals [CPUFieldCount]uint64
		for i := range vals {
			val, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return CPUCounters{}, fmt.Errorf("failed to parse cpu field %d: %w", i+1, err)
			}
			vals[i] = val
		}

		return CPUCounters{
			User:    vals[0],
			Nice:    vals[1],
			System:  vals[2],
			Idle:    vals[3],
			IOWait:  vals[4],
			IRQ:     vals[5],
			SoftIRQ: vals[6],
		}, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUCounters{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}

	return CPUCounters{}, fmt.Errorf("cpu line not found in /proc/stat")
}

// ParseMeminfo parses memory totals from /proc/meminfo output.
// MemTotal and MemFree are required; other fields are ignored.
func ParseMeminfo(procMeminfo string) (Meminfo, error) {
	var info Meminfo
	var foundTotal, foundFree bool

	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		if key != "MemTotal" && key != "MemFree" {
			continue
		}

		// Values in /proc/meminfo are in kB
		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return Meminfo{}, fmt.Errorf("failed to parse %s: %w", key, err)
		}
		valBytes := val * 1024

		switch key {
		case "MemTotal":
			info.Total = valBytes
			foundTotal = true
		case "MemFree":
			info.Free = valBytes
			foundFree = true
		}
	}

	if err := scanner.Err(); err != nil {
		return Meminfo{}, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}

	if !foundTotal {
		return Meminfo{}, fmt.Errorf("MemTotal not found in /proc/meminfo")
	}
	if !foundFree {
		return Meminfo{}, fmt.Errorf("MemFree not found in /proc/meminfo")
	}

	return info, nil
}
