package kernelconfigs

import (
	"time"

	"github.com/dwido/yooper/configs"
)

// EnvOverrides sit between command-line flags and config files in the
// resolution order: flag > env > file > default.
type EnvOverrides struct {
	SchedulerPeriod time.Duration `env:"YOOPER_SCHEDULER_PERIOD"`
	BlockSize       int           `env:"YOOPER_BLOCK_SIZE"`
	Prompt          string        `env:"YOOPER_PROMPT"`
	BootStageDelay  time.Duration `env:"YOOPER_BOOT_STAGE_DELAY"`
}

func (Module) EnvOverrides() EnvOverrides {
	var overrides EnvOverrides
	if err := configs.ParseEnv(&overrides); err != nil {
		panic(err)
	}
	return overrides
}
