package kernelconfigs

import (
	"github.com/dwido/yooper/cmds"
	"github.com/dwido/yooper/configs"
	"github.com/dwido/yooper/vars"
)

// Prompt is the console prompt string.
type Prompt string

const defaultPrompt = "YOOPER> "

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
	env EnvOverrides,
) Prompt {
	if prompt := vars.FirstNonZero(
		*promptFlag,
		env.Prompt,
		configs.First[string](loader, "prompt"),
	); prompt != "" {
		return Prompt(prompt)
	}
	return Prompt(defaultPrompt)
}
