package debugs

import (
	"github.com/dwido/yooper/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
