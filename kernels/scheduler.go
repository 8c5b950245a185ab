package kernels

import (
	"fmt"
	"time"
)

// StartScheduler moves the kernel to StateRunning and starts the
// regeneration loop in its own goroutine.
func (k *Kernel) StartScheduler() error {
	k.mu.Lock()
	if k.state != StateBooted {
		state := k.state
		k.mu.Unlock()
		return fmt.Errorf("start scheduler: kernel is %s", state)
	}
	k.state = StateRunning
	k.stop = make(chan struct{})
	k.done = make(chan struct{})
	stop, done := k.stop, k.done
	k.mu.Unlock()

	k.logger.Info("scheduler started", "period", k.period)
	go k.schedulerLoop(stop, done)
	return nil
}

func (k *Kernel) schedulerLoop(stop chan struct{}, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(k.period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			k.Tick()
		}
	}
}

// Tick regenerates health and mana for every live process, clamped to
// 100. It performs no IO and cannot fail.
func (k *Kernel) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, proc := range k.processes {
		if proc.Health <= 0 {
			continue
		}
		proc.Health = min(100, proc.Health+1)
		proc.Mana = min(100, proc.Mana+2)
	}
}

// Shutdown stops the scheduler loop, waits for it to exit, and moves
// the kernel to StateShutdown. There is no way back.
func (k *Kernel) Shutdown() {
	k.mu.Lock()
	if k.state != StateRunning {
		if k.state != StateShutdown {
			k.state = StateShutdown
		}
		k.mu.Unlock()
		return
	}
	k.state = StateShutdown
	stop, done := k.stop, k.done
	k.mu.Unlock()

	close(stop)
	<-done
	k.logger.Info("scheduler stopped")
}
