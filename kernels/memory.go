package kernels

import (
	"fmt"
	"slices"
)

// MemoryZone is a synthetic memory claim. Addresses are derived from
// the zone count alone, so zones may overlap; sacred zones are
// read-only by label only, nothing enforces the permission string.
type MemoryZone struct {
	StartAddress int
	Size         int
	Permissions  string
	Label        string
	Sacred       bool
}

// AllocateMemory appends a zone. There is no free operation.
func (k *Kernel) AllocateMemory(size int, label string, sacred bool) MemoryZone {
	permissions := "rwx"
	if sacred {
		permissions = "r--"
	}

	k.mu.Lock()
	zone := MemoryZone{
		StartAddress: len(k.zones) * k.blockSize,
		Size:         size,
		Permissions:  permissions,
		Label:        label,
		Sacred:       sacred,
	}
	k.zones = append(k.zones, zone)
	k.mu.Unlock()

	protection := "NORMAL"
	if sacred {
		protection = "SACRED"
	}
	fmt.Fprintf(k.out, "Memory zone claimed: %s (%s)\n", label, protection)
	k.logger.Info("memory zone claimed",
		"label", label,
		"size", size,
		"start", zone.StartAddress,
		"sacred", sacred,
	)
	return zone
}

// Zones returns a copy of the zone list in allocation order.
func (k *Kernel) Zones() []MemoryZone {
	k.mu.Lock()
	defer k.mu.Unlock()
	return slices.Clone(k.zones)
}
