package kernelconfigs

import (
	"time"

	"github.com/dwido/yooper/cmds"
	"github.com/dwido/yooper/configs"
)

// SchedulerPeriod is the interval between regeneration ticks.
type SchedulerPeriod time.Duration

const defaultSchedulerPeriod = 100 * time.Millisecond

var schedulerPeriodFlag = cmds.Var[time.Duration]("-tick-interval")

func (Module) SchedulerPeriod(
	loader configs.Loader,
	env EnvOverrides,
) SchedulerPeriod {

	// flag
	if *schedulerPeriodFlag > 0 {
		return SchedulerPeriod(*schedulerPeriodFlag)
	}

	// env
	if env.SchedulerPeriod > 0 {
		return SchedulerPeriod(env.SchedulerPeriod)
	}

	// config
	if str := configs.First[string](loader, "scheduler_period"); str != "" {
		period, err := time.ParseDuration(str)
		if err != nil {
			panic(err)
		}
		if period > 0 {
			return SchedulerPeriod(period)
		}
	}

	return SchedulerPeriod(defaultSchedulerPeriod)
}
