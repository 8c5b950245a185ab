package main

import (
	"context"
	"os"

	"github.com/dwido/yooper/cmds"
	"github.com/dwido/yooper/consoles"
	"github.com/dwido/yooper/kernelconfigs"
	"github.com/dwido/yooper/kernels"
	"github.com/dwido/yooper/logs"
	"github.com/dwido/yooper/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Consoles consoles.Module
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		kernel *kernels.Kernel,
		console *consoles.Console,
		seedZones kernelconfigs.SeedZones,
		seedProcesses kernelconfigs.SeedProcesses,
	) {

		ce(kernel.Boot(ctx))
		ce(kernel.StartScheduler())

		for _, zone := range seedZones {
			kernel.AllocateMemory(zone.Size, zone.Label, zone.Sacred)
		}
		for _, name := range seedProcesses {
			kernel.SpawnProcess(name, nil)
		}

		if err := console.Run(ctx); err != nil {
			kernel.Panic(err.Error())
			os.Exit(1)
		}
		logger.InfoContext(ctx, "shutdown complete")
	})
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
