package tapeconfigs

import (
	"github.com/reusee/tapec/cmds"
	"github.com/reusee/tapec/configs"
	"github.com/reusee/tapec/vars"
)

var (
	debugFlag  = cmds.Switch("-debug", "emit the max-index tracker and dump the tape on exit")
	strictFlag = cmds.Switch("-strict", "reject loop brackets that close before they open")
	runFlag    = cmds.Switch("-run", "run the program from memory instead of writing an executable")
)

type Debug bool

var _ configs.Configurable = Debug(false)

func (Debug) ConfigExpr() string {
	return "debug"
}

func (Module) Debug(
	loader configs.Loader,
) Debug {
	return vars.FirstNonZero(
		Debug(*debugFlag),
		configs.FirstOf[Debug](loader),
	)
}

type StrictBrackets bool

var _ configs.Configurable = StrictBrackets(false)

func (StrictBrackets) ConfigExpr() string {
	return "strict_brackets"
}

func (Module) StrictBrackets(
	loader configs.Loader,
) StrictBrackets {
	return vars.FirstNonZero(
		StrictBrackets(*strictFlag),
		configs.FirstOf[StrictBrackets](loader),
	)
}

type Run bool

var _ configs.Configurable = Run(false)

func (Run) ConfigExpr() string {
	return "run"
}

func (Module) Run(
	loader configs.Loader,
) Run {
	return vars.FirstNonZero(
		Run(*runFlag),
		configs.FirstOf[Run](loader),
	)
}
