package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// DefaultWorkerCount returns the number of logical CPUs
func DefaultWorkerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// SystemInfo describes the host a render runs on
type SystemInfo struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64 // bytes
}

// GetSystemInfo queries the host. Fields that cannot be read are left zero.
func GetSystemInfo() SystemInfo {
	info := SystemInfo{LogicalCores: DefaultWorkerCount()}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}
