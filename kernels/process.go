package kernels

import (
	"slices"
	"time"
)

type Privilege uint8

const (
	PrivilegeNormal Privilege = iota
	PrivilegeGod
	PrivilegeAllAccess
	PrivilegeKernelMode
	PrivilegeDebug
)

func (p Privilege) String() string {
	switch p {
	case PrivilegeNormal:
		return "normal"
	case PrivilegeGod:
		return "god"
	case PrivilegeAllAccess:
		return "all access"
	case PrivilegeKernelMode:
		return "kernel mode"
	case PrivilegeDebug:
		return "debug"
	}
	return "unknown"
}

// Process is a simulated process. Health and Mana stay within [0, 100].
type Process struct {
	ID        int
	Name      string
	Health    int
	Mana      int
	Level     Privilege
	SpawnedAt time.Time
	ParentID  *int
}

// Processes returns a copy of the process table, ordered by id.
func (k *Kernel) Processes() []Process {
	k.mu.Lock()
	defer k.mu.Unlock()
	ret := make([]Process, 0, len(k.processes))
	for _, proc := range k.processes {
		ret = append(ret, *proc)
	}
	slices.SortFunc(ret, func(a, b Process) int {
		return a.ID - b.ID
	})
	return ret
}
