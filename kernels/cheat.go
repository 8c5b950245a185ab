package kernels

import (
	"fmt"
	"strings"
)

// CheatCode is the closed set of recognized cheat tokens.
type CheatCode uint8

const (
	CheatUnknown CheatCode = iota
	CheatGodMode            // IDDQD
	CheatAllAccess          // IDKFA
	CheatKernelMode         // IDCLIP
	CheatDebug              // IDDT
)

func ParseCheatCode(code string) CheatCode {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "IDDQD":
		return CheatGodMode
	case "IDKFA":
		return CheatAllAccess
	case "IDCLIP":
		return CheatKernelMode
	case "IDDT":
		return CheatDebug
	}
	return CheatUnknown
}

// ExecuteCheatCode matches code case-insensitively against the cheat
// table. Unrecognized codes are reported and leave all state unchanged.
// IDKFA and IDCLIP acknowledge without touching the registry.
func (k *Kernel) ExecuteCheatCode(code string, userID string) bool {
	switch ParseCheatCode(code) {

	case CheatGodMode:
		k.mu.Lock()
		k.godModeUsers[userID] = struct{}{}
		k.mu.Unlock()
		fmt.Fprintf(k.out, "GOD MODE ACTIVATED for %s\n", userID)
		fmt.Fprintln(k.out, "Super Admin privileges granted!")
		k.logger.Info("cheat code", "code", "IDDQD", "user", userID)
		return true

	case CheatAllAccess:
		fmt.Fprintf(k.out, "ALL ACCESS GRANTED for %s\n", userID)
		fmt.Fprintln(k.out, "Root-level permissions enabled!")
		k.logger.Info("cheat code", "code", "IDKFA", "user", userID)
		return true

	case CheatKernelMode:
		fmt.Fprintf(k.out, "KERNEL MODE for %s\n", userID)
		fmt.Fprintln(k.out, "All boundaries removed!")
		k.logger.Info("cheat code", "code", "IDCLIP", "user", userID)
		return true

	case CheatDebug:
		k.mu.Lock()
		k.debugMode = true
		k.mu.Unlock()
		fmt.Fprintf(k.out, "DEBUG MODE ACTIVATED for %s\n", userID)
		fmt.Fprintln(k.out, "Full system visibility enabled!")
		k.logger.Info("cheat code", "code", "IDDT", "user", userID)
		k.ShowSystemMap()
		return true

	}

	fmt.Fprintf(k.out, "Unknown cheat code: %s\n", strings.ToUpper(strings.TrimSpace(code)))
	return false
}
