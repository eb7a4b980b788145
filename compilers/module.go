package compilers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapec/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}
