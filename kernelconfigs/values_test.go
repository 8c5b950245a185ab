package kernelconfigs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dwido/yooper/configs"
	"github.com/dwido/yooper/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, cueSource string) dscope.Scope {
	var paths []string
	if cueSource != "" {
		path := filepath.Join(t.TempDir(), "yooper.cue")
		if err := os.WriteFile(path, []byte(cueSource), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, schema)
		},
	)
}

func TestDefaults(t *testing.T) {
	testScope(t, "").Call(func(
		period SchedulerPeriod,
		blockSize BlockSize,
		prompt Prompt,
		delay BootStageDelay,
		zones SeedZones,
		processes SeedProcesses,
	) {
		if time.Duration(period) != 100*time.Millisecond {
			t.Fatalf("got %v", period)
		}
		if blockSize != 0x1000 {
			t.Fatalf("got %#x", blockSize)
		}
		if prompt != "YOOPER> " {
			t.Fatalf("got %q", prompt)
		}
		if time.Duration(delay) != 500*time.Millisecond {
			t.Fatalf("got %v", delay)
		}
		if len(zones) != 3 || zones[0].Label != "KERNEL_CORE" || !zones[0].Sacred {
			t.Fatalf("got %v", zones)
		}
		if len(processes) != 3 || processes[0] != "init_daemon" {
			t.Fatalf("got %v", processes)
		}
	})
}

func TestConfigFile(t *testing.T) {
	testScope(t, `
scheduler_period: "250ms"
block_size:       8192
prompt:           "THOR> "
boot_stage_delay: "1ms"
zones: [
	{label: "CORE", size: 4096, sacred: true},
	{label: "HEAP", size: 8192},
]
processes: ["odin", "freya"]
`).Call(func(
		period SchedulerPeriod,
		blockSize BlockSize,
		prompt Prompt,
		delay BootStageDelay,
		zones SeedZones,
		processes SeedProcesses,
	) {
		if time.Duration(period) != 250*time.Millisecond {
			t.Fatalf("got %v", period)
		}
		if blockSize != 8192 {
			t.Fatalf("got %d", blockSize)
		}
		if prompt != "THOR> " {
			t.Fatalf("got %q", prompt)
		}
		if time.Duration(delay) != time.Millisecond {
			t.Fatalf("got %v", delay)
		}
		if len(zones) != 2 || zones[0].Label != "CORE" || !zones[0].Sacred || zones[1].Sacred {
			t.Fatalf("got %v", zones)
		}
		if len(processes) != 2 || processes[1] != "freya" {
			t.Fatalf("got %v", processes)
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("YOOPER_SCHEDULER_PERIOD", "30ms")
	t.Setenv("YOOPER_BLOCK_SIZE", "2048")
	testScope(t, `scheduler_period: "250ms"`).Call(func(
		period SchedulerPeriod,
		blockSize BlockSize,
	) {
		// env wins over the config file
		if time.Duration(period) != 30*time.Millisecond {
			t.Fatalf("got %v", period)
		}
		if blockSize != 2048 {
			t.Fatalf("got %d", blockSize)
		}
	})
}
