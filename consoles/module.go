package consoles

import (
	"io"
	"os"

	"github.com/dwido/yooper/debugs"
	"github.com/dwido/yooper/kernelconfigs"
	"github.com/dwido/yooper/kernels"
	"github.com/dwido/yooper/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Kernels kernels.Module
	Debugs  debugs.Module
	Logs    logs.Module
	Configs kernelconfigs.Module
}

type Input io.Reader

func (Module) Input() Input {
	return os.Stdin
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Console(
	kernel *kernels.Kernel,
	tap debugs.Tap,
	logger logs.Logger,
	newSpan logs.NewSpan,
	prompt kernelconfigs.Prompt,
	in Input,
	out Output,
) *Console {
	return &Console{
		kernel:  kernel,
		tap:     tap,
		logger:  logger,
		newSpan: newSpan,
		prompt:  string(prompt),
		in:      in,
		out:     out,
	}
}
