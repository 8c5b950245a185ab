package kernels

import (
	"time"

	"github.com/dwido/yooper/vars"
)

// Snapshot flattens the kernel state into plain values, suitable for
// the debug tap.
func (k *Kernel) Snapshot() map[string]any {
	k.mu.Lock()
	defer k.mu.Unlock()

	processes := make([]any, 0, len(k.processes))
	for _, proc := range k.processes {
		processes = append(processes, map[string]any{
			"pid":    proc.ID,
			"name":   proc.Name,
			"health": proc.Health,
			"mana":   proc.Mana,
			"level":  proc.Level.String(),
			"parent": vars.DerefOrZero(proc.ParentID),
		})
	}

	zones := make([]any, 0, len(k.zones))
	for _, zone := range k.zones {
		zones = append(zones, map[string]any{
			"label":       zone.Label,
			"start":       zone.StartAddress,
			"size":        zone.Size,
			"permissions": zone.Permissions,
			"sacred":      zone.Sacred,
		})
	}

	uptime := 0.0
	if !k.bootTime.IsZero() {
		uptime = time.Since(k.bootTime).Seconds()
	}

	return map[string]any{
		"version":        Version,
		"codename":       Codename,
		"state":          k.state.String(),
		"health":         k.kernelHealth,
		"active":         k.activeCount,
		"uptime_seconds": uptime,
		"processes":      processes,
		"zones":          zones,
		"god_mode_users": len(k.godModeUsers),
		"debug_mode":     k.debugMode,
	}
}
