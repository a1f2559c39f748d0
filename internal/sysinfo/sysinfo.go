// Package sysinfo probes host and process resource usage for the info
// command.
package sysinfo

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is a point-in-time snapshot. Probes that fail leave their
// fields at zero; a partially filled snapshot is still worth showing.
type Stats struct {
	MemoryUsedPercent float64
	CPUPercent        float64
	HostUptime        time.Duration
	Goroutines        int
	HeapAllocMB       float64
	GoVersion         string
	Platform          string
}

// Collect gathers a snapshot. It never returns an error.
func Collect() Stats {
	s := Stats{
		Goroutines: runtime.NumGoroutine(),
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.HeapAllocMB = float64(ms.HeapAlloc) / (1024 * 1024)

	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemoryUsedPercent = vm.UsedPercent
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if up, err := host.Uptime(); err == nil {
		s.HostUptime = time.Duration(up) * time.Second
	}

	return s
}
