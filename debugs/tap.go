package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/dwido/yooper/logs"
	"github.com/dwido/yooper/syncs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark inspection session over a set of
// globals. Only one tap runs at a time.
type Tap func(ctx context.Context, what string, globals map[string]any)

var tapSem = syncs.NewSemaphore(1)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		tapSem.Acquire()
		defer tapSem.Release()

		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
