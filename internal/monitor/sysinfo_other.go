//go:build !linux

package monitor

import (
	"fmt"
	"runtime"
)

const sysinfoAvailable = false

func sysinfoMemory() (MemoryInfo, error) {
	return MemoryInfo{}, fmt.Errorf("sysinfo is not available on %s", runtime.GOOS)
}
