package consoles

import "strings"

type commandKind uint8

const (
	// the default arm: anything unmatched is tried as a cheat code
	cmdCheat commandKind = iota
	cmdHelp
	cmdSpawn
	cmdPS
	cmdMem
	cmdHealth
	cmdTap
	cmdQuit
)

type command struct {
	kind commandKind
	arg  string
}

func parseCommand(line string) command {
	trimmed := strings.TrimSpace(line)
	switch strings.ToLower(trimmed) {
	case "help":
		return command{kind: cmdHelp}
	case "ps":
		return command{kind: cmdPS}
	case "mem":
		return command{kind: cmdMem}
	case "health":
		return command{kind: cmdHealth}
	case "tap":
		return command{kind: cmdTap}
	case "quit":
		return command{kind: cmdQuit}
	}
	if len(trimmed) > 6 && strings.EqualFold(trimmed[:6], "spawn ") {
		return command{kind: cmdSpawn, arg: strings.TrimSpace(trimmed[6:])}
	}
	return command{kind: cmdCheat, arg: trimmed}
}
