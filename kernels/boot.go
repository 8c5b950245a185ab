package kernels

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dwido/yooper/procs"
)

var bootStages = []string{
	"Loading game engine...",
	"Initializing player spawn points...",
	"Setting up memory zones...",
	"Activating cheat codes...",
	"Starting process scheduler...",
	"Enabling god mode access...",
	"Kernel ready for players!",
}

// Boot prints the boot stage sequence and moves the kernel to
// StateBooted. It touches no process or zone state.
func (k *Kernel) Boot(ctx context.Context) error {
	k.mu.Lock()
	if k.state != StateNotBooted {
		state := k.state
		k.mu.Unlock()
		return fmt.Errorf("boot: kernel is %s", state)
	}
	k.bootTime = time.Now()
	k.mu.Unlock()

	fmt.Fprintf(k.out, "YOOPER Kernel v%s - %s\n", Version, Codename)
	fmt.Fprintln(k.out, "YOOPER KERNEL BOOT SEQUENCE")
	fmt.Fprintln(k.out, strings.Repeat("=", 50))

	var stages procs.Procs[context.Context]
	for i, stage := range bootStages {
		stages = append(stages, procs.Func[context.Context](
			func(ctx context.Context) (procs.Proc[context.Context], error) {
				fmt.Fprintf(k.out, "[%d/%d] %s\n", i+1, len(bootStages), stage)
				if k.stageDelay > 0 {
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(k.stageDelay):
					}
				}
				return nil, nil
			},
		))
	}
	var proc procs.Proc[context.Context] = stages
	for proc != nil {
		var err error
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}

	k.mu.Lock()
	k.state = StateBooted
	k.mu.Unlock()

	fmt.Fprintln(k.out, "YOOPER KERNEL ONLINE!")
	fmt.Fprintln(k.out, "Type 'IDDQD' for god mode")
	fmt.Fprintln(k.out, "Type 'IDKFA' for all access")
	fmt.Fprintln(k.out, "Type 'IDCLIP' for kernel mode")
	fmt.Fprintln(k.out, "Type 'IDDT' for debug mode")
	k.logger.InfoContext(ctx, "boot complete",
		"version", Version,
		"codename", Codename,
	)
	return nil
}
