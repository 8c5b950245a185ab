package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}
