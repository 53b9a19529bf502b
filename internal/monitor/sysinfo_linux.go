//go:build linux

package monitor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const sysinfoAvailable = true

// sysinfoMemory reads total and free RAM via sysinfo(2).
func sysinfoMemory() (MemoryInfo, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return MemoryInfo{}, fmt.Errorf("sysinfo: %w", err)
	}

	// Sizes are in multiples of Unit bytes (0 on very old kernels means 1).
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}

	return MemoryInfo{
		Total: uint64(info.Totalram) * unit,
		Free:  uint64(info.Freeram) * unit,
	}, nil
}
