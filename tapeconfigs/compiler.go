package tapeconfigs

import (
	"os"
	"slices"

	"github.com/reusee/tapec/cmds"
	"github.com/reusee/tapec/configs"
	"github.com/reusee/tapec/vars"
)

var (
	compilerFlag = cmds.Var[string]("-cc", "path to the C compiler, tcc by default")
	outputFlag   = cmds.Var[string]("-o", "output path, <file stem>.exe by default")
)

// CompilerPath is empty when nothing configures it; compilers.Locate then searches.
type CompilerPath string

var _ configs.Configurable = CompilerPath("")

func (CompilerPath) ConfigExpr() string {
	return "compiler_path"
}

func (Module) CompilerPath(
	loader configs.Loader,
) CompilerPath {
	return vars.FirstNonZero(
		CompilerPath(*compilerFlag),
		configs.FirstOf[CompilerPath](loader),
		CompilerPath(os.Getenv("TAPEC_CC")),
	)
}

var defaultCompilerArgs = []string{"-Os"}

// CompilerArgs precede the "-" stdin marker on the compiler command line.
type CompilerArgs []string

var _ configs.Configurable = CompilerArgs(nil)

func (CompilerArgs) ConfigExpr() string {
	return "compiler_args"
}

// The first compiler_args found replaces the default; every
// extra_compiler_args list is appended, most specific file first.
func (Module) CompilerArgs(
	loader configs.Loader,
) CompilerArgs {
	args := slices.Clone(defaultCompilerArgs)
	if configured := configs.FirstOf[CompilerArgs](loader); configured != nil {
		args = slices.Clone(configured)
	}
	for extra := range configs.All[[]string](loader, "extra_compiler_args") {
		args = append(args, extra...)
	}
	return args
}

// OutputPath is empty unless configured; callers derive it from the input file.
type OutputPath string

var _ configs.Configurable = OutputPath("")

func (OutputPath) ConfigExpr() string {
	return "output"
}

func (Module) OutputPath(
	loader configs.Loader,
) OutputPath {
	return vars.FirstNonZero(
		OutputPath(*outputFlag),
		configs.FirstOf[OutputPath](loader),
	)
}
