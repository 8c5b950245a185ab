package consoles

import "testing"

func TestParseCommand(t *testing.T) {
	for _, tc := range []struct {
		line string
		kind commandKind
		arg  string
	}{
		{"help", cmdHelp, ""},
		{"HELP", cmdHelp, ""},
		{"ps", cmdPS, ""},
		{" Mem ", cmdMem, ""},
		{"health", cmdHealth, ""},
		{"tap", cmdTap, ""},
		{"quit", cmdQuit, ""},
		{"QUIT", cmdQuit, ""},
		{"spawn worker", cmdSpawn, "worker"},
		{"SPAWN worker", cmdSpawn, "worker"},
		{"spawn  padded  ", cmdSpawn, "padded"},
		{"spawn", cmdCheat, "spawn"},
		{"IDDQD", cmdCheat, "IDDQD"},
		{"iddqd", cmdCheat, "iddqd"},
		{"xyzzy", cmdCheat, "xyzzy"},
		{"", cmdCheat, ""},
	} {
		cmd := parseCommand(tc.line)
		if cmd.kind != tc.kind {
			t.Fatalf("%q: got kind %d, want %d", tc.line, cmd.kind, tc.kind)
		}
		if cmd.arg != tc.arg {
			t.Fatalf("%q: got arg %q, want %q", tc.line, cmd.arg, tc.arg)
		}
	}
}
