package kernels

import (
	"io"
	"sync"
	"time"

	"github.com/dwido/yooper/logs"
)

const (
	Version  = "1.0.0-ALPHA"
	Codename = "IDDQD_FOUNDATION"
)

// process ids start above reserved kernel pids
const firstProcessID = 1000

type State uint8

const (
	StateNotBooted State = iota
	StateBooted
	StateRunning
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateNotBooted:
		return "not booted"
	case StateBooted:
		return "booted"
	case StateRunning:
		return "running"
	case StateShutdown:
		return "shutdown"
	}
	return "unknown"
}

// Kernel is the gaming kernel simulator. A single mutex guards the
// process table, the memory zones and the privilege registry, since
// the scheduler loop and the console mutate them concurrently.
type Kernel struct {
	out    io.Writer
	logger logs.Logger

	period     time.Duration
	blockSize  int
	stageDelay time.Duration

	mu           sync.Mutex
	state        State
	bootTime     time.Time
	kernelHealth int
	nextID       int
	processes    map[int]*Process
	activeCount  int
	zones        []MemoryZone
	godModeUsers map[string]struct{}
	debugMode    bool

	stop chan struct{}
	done chan struct{}
}

func (k *Kernel) State() State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

func (k *Kernel) Running() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state == StateRunning
}

func (k *Kernel) Health() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.kernelHealth
}

func (k *Kernel) ActiveCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.activeCount
}

func (k *Kernel) Uptime() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.bootTime.IsZero() {
		return 0
	}
	return time.Since(k.bootTime)
}

func (k *Kernel) DebugMode() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.debugMode
}

func (k *Kernel) HasGodModeUser(userID string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.godModeUsers[userID]
	return ok
}

func (k *Kernel) GodModeUserCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.godModeUsers)
}
