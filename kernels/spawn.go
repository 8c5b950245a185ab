package kernels

import (
	"fmt"
	"time"

	"github.com/dwido/yooper/vars"
)

// SpawnProcess creates a simulated process and returns its id. Ids are
// strictly increasing and never reused. Empty names are accepted.
func (k *Kernel) SpawnProcess(name string, parentID *int) int {
	k.mu.Lock()
	id := k.nextID
	k.nextID++
	k.processes[id] = &Process{
		ID:        id,
		Name:      name,
		Health:    100,
		Mana:      100,
		Level:     PrivilegeNormal,
		SpawnedAt: time.Now(),
		ParentID:  parentID,
	}
	k.activeCount++
	k.mu.Unlock()

	fmt.Fprintf(k.out, "Process spawned: %s (PID: %d)\n", name, id)
	k.logger.Info("process spawned",
		"pid", id,
		"name", name,
		"parent", vars.DerefOrZero(parentID),
	)
	return id
}
