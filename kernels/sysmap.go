package kernels

import (
	"fmt"
	"strings"
	"time"
)

// ShowSystemMap prints kernel health, active count, uptime and the
// process listing. Pure read, no mutation.
func (k *Kernel) ShowSystemMap() {
	k.mu.Lock()
	health := k.kernelHealth
	active := k.activeCount
	uptime := time.Duration(0)
	if !k.bootTime.IsZero() {
		uptime = time.Since(k.bootTime)
	}
	godUsers := len(k.godModeUsers)
	k.mu.Unlock()
	processes := k.Processes()

	fmt.Fprintln(k.out, "YOOPER SYSTEM MAP")
	fmt.Fprintln(k.out, strings.Repeat("=", 40))
	fmt.Fprintf(k.out, "Kernel Health: %d%%\n", health)
	fmt.Fprintf(k.out, "Active Players: %d\n", active)
	fmt.Fprintf(k.out, "Uptime: %.1fs\n", uptime.Seconds())

	fmt.Fprintln(k.out, "ACTIVE PROCESSES:")
	for _, proc := range processes {
		marker := " "
		if proc.Level != PrivilegeNormal {
			marker = "*"
		}
		fmt.Fprintf(k.out, "  %s %s (PID: %d) - Health: %d%%\n",
			marker, proc.Name, proc.ID, proc.Health)
	}

	fmt.Fprintf(k.out, "God Mode Users: %d\n", godUsers)
}
