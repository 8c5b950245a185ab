package consoles

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/dwido/yooper/debugs"
	"github.com/dwido/yooper/kernels"
	"github.com/dwido/yooper/logs"
	"golang.org/x/term"
)

// ConsoleUser is the user identity cheat codes are attributed to when
// typed at the console.
const ConsoleUser = "console_user"

// Console reads operator commands and drives the kernel. Input comes
// from readline on a terminal, or a plain line scanner on piped input.
type Console struct {
	kernel  *kernels.Kernel
	tap     debugs.Tap
	logger  logs.Logger
	newSpan logs.NewSpan
	prompt  string
	in      io.Reader
	out     io.Writer
}

// Run loops until quit, EOF, interrupt, or kernel shutdown. It stops
// the scheduler before returning, so the tick goroutine is joined by
// the time the process exits.
func (c *Console) Run(ctx context.Context) error {
	ctx, _ = c.newSpan(ctx, "")

	fmt.Fprintln(c.out, "YOOPER KERNEL CONSOLE")
	fmt.Fprintln(c.out, "Type cheat codes or 'help' for commands")
	fmt.Fprintln(c.out, "Type 'quit' to shutdown kernel")

	readLine, closeLines, err := c.lineSource()
	if err != nil {
		return logs.WrapSpan(ctx, fmt.Errorf("console input: %w", err))
	}
	defer closeLines()

	for c.kernel.Running() {
		line, err := readLine()
		if err != nil {
			// EOF or interrupt, treat as quit
			break
		}
		cmd := parseCommand(line)
		if cmd.kind == cmdCheat && cmd.arg == "" {
			continue
		}
		if quit := c.dispatch(ctx, cmd); quit {
			break
		}
	}

	fmt.Fprintln(c.out, "Shutting down YOOPER kernel...")
	c.logger.InfoContext(ctx, "console closed")
	c.kernel.Shutdown()
	return nil
}

func (c *Console) dispatch(ctx context.Context, cmd command) (quit bool) {
	switch cmd.kind {

	case cmdHelp:
		c.printHelp()

	case cmdSpawn:
		c.kernel.SpawnProcess(cmd.arg, nil)

	case cmdPS:
		c.kernel.ShowSystemMap()

	case cmdMem:
		c.printZones()

	case cmdHealth:
		fmt.Fprintf(c.out, "Kernel Health: %d%%\n", c.kernel.Health())
		fmt.Fprintf(c.out, "Active Players: %d\n", c.kernel.ActiveCount())

	case cmdTap:
		c.tap(ctx, "console", c.kernel.Snapshot())

	case cmdQuit:
		return true

	default:
		if !c.kernel.ExecuteCheatCode(cmd.arg, ConsoleUser) {
			fmt.Fprintf(c.out, "Unknown command: %s\n", cmd.arg)
		}
	}

	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "YOOPER COMMANDS:")
	fmt.Fprintln(c.out, "IDDQD - God mode (Super Admin)")
	fmt.Fprintln(c.out, "IDKFA - All access (Root)")
	fmt.Fprintln(c.out, "IDCLIP - Kernel mode")
	fmt.Fprintln(c.out, "IDDT - Debug mode")
	fmt.Fprintln(c.out, "spawn <name> - Create process")
	fmt.Fprintln(c.out, "ps - List processes")
	fmt.Fprintln(c.out, "mem - Show memory zones")
	fmt.Fprintln(c.out, "health - System status")
	fmt.Fprintln(c.out, "tap - Inspect kernel state")
	fmt.Fprintln(c.out, "quit - Shutdown kernel")
}

func (c *Console) printZones() {
	fmt.Fprintln(c.out, "MEMORY ZONES:")
	for _, zone := range c.kernel.Zones() {
		fmt.Fprintf(c.out, "  [%s] %s: %d bytes at 0x%x\n",
			zone.Permissions, zone.Label, zone.Size, zone.StartAddress)
	}
}

type lineFunc func() (string, error)

func (c *Console) lineSource() (lineFunc, func(), error) {
	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".yooper_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      c.prompt,
			HistoryFile: historyFile,
		})
		if err != nil {
			return nil, nil, err
		}
		return rl.Readline, func() { rl.Close() }, nil
	}

	scanner := bufio.NewScanner(c.in)
	return func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}, func() {}, nil
}
