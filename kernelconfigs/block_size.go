package kernelconfigs

import (
	"github.com/dwido/yooper/cmds"
	"github.com/dwido/yooper/configs"
	"github.com/dwido/yooper/vars"
)

// BlockSize spaces synthetic zone start addresses.
type BlockSize int

const defaultBlockSize = 0x1000

var blockSizeFlag = cmds.Var[int]("-block-size")

func (Module) BlockSize(
	loader configs.Loader,
	env EnvOverrides,
) BlockSize {
	if size := vars.FirstNonZero(
		*blockSizeFlag,
		env.BlockSize,
		configs.First[int](loader, "block_size"),
	); size > 0 {
		return BlockSize(size)
	}
	return BlockSize(defaultBlockSize)
}
