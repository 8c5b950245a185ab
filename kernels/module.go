package kernels

import (
	"io"
	"os"
	"time"

	"github.com/dwido/yooper/kernelconfigs"
	"github.com/dwido/yooper/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs kernelconfigs.Module
}

// Writer receives the console-facing output of the simulator.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stdout
}

func (Module) Kernel(
	writer Writer,
	logger logs.Logger,
	period kernelconfigs.SchedulerPeriod,
	blockSize kernelconfigs.BlockSize,
	stageDelay kernelconfigs.BootStageDelay,
) *Kernel {
	return &Kernel{
		out:          writer,
		logger:       logger,
		period:       time.Duration(period),
		blockSize:    int(blockSize),
		stageDelay:   time.Duration(stageDelay),
		state:        StateNotBooted,
		kernelHealth: 100,
		nextID:       firstProcessID,
		processes:    make(map[int]*Process),
		godModeUsers: make(map[string]struct{}),
	}
}
