package kernelconfigs

import (
	"time"

	"github.com/dwido/yooper/cmds"
	"github.com/dwido/yooper/configs"
)

// BootStageDelay is the pause between boot stage prints. Zero disables
// the pause.
type BootStageDelay time.Duration

const defaultBootStageDelay = 500 * time.Millisecond

var bootStageDelayFlag = cmds.Var[time.Duration]("-boot-stage-delay")

var noBootDelayFlag = cmds.Switch("-fast-boot")

func (Module) BootStageDelay(
	loader configs.Loader,
	env EnvOverrides,
) BootStageDelay {
	if *noBootDelayFlag {
		return 0
	}
	if *bootStageDelayFlag > 0 {
		return BootStageDelay(*bootStageDelayFlag)
	}
	if env.BootStageDelay > 0 {
		return BootStageDelay(env.BootStageDelay)
	}
	if str := configs.First[string](loader, "boot_stage_delay"); str != "" {
		delay, err := time.ParseDuration(str)
		if err != nil {
			panic(err)
		}
		return BootStageDelay(delay)
	}
	return BootStageDelay(defaultBootStageDelay)
}
