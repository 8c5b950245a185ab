package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, depth int) {
	aliases := make(map[*Command][]string)
	var names []string
	for name, command := range commands {
		if command == nil {
			continue
		}
		if slices.Contains(command.Aliases, name) {
			aliases[command] = append(aliases[command], name)
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		line := indent + name
		if extra := aliases[command]; len(extra) > 0 {
			slices.Sort(extra)
			line += " (" + strings.Join(extra, ", ") + ")"
		}
		if command.Description != "" {
			line += "\n" + indent + "  " + command.Description
		}
		fmt.Fprintln(os.Stderr, line)
		if len(command.Subs) > 0 {
			printCommands(command.Subs, depth+1)
		}
	}
}
