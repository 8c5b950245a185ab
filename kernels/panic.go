package kernels

import (
	"fmt"
	"strings"
)

// Panic prints the panic banner and shuts the simulator down. It is
// the only fatal path; the caller decides whether to exit the process.
func (k *Kernel) Panic(reason string) {
	fmt.Fprintln(k.out, "KERNEL PANIC! GAME OVER!")
	fmt.Fprintln(k.out, strings.Repeat("=", 40))
	fmt.Fprintf(k.out, "Reason: %s\n", reason)
	fmt.Fprintln(k.out, "The gaming OS has encountered a fatal error")
	fmt.Fprintln(k.out, "Respawn recommended")
	fmt.Fprintln(k.out, strings.Repeat("=", 40))

	k.logger.Error("kernel panic", "reason", reason)
	k.Shutdown()
}
