package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tapec/cmds"
	"github.com/reusee/tapec/configs"
	"github.com/reusee/tapec/modes"
)

var (
	filePath string

	emitFlag  = cmds.Switch("-emit", "write the generated C to stdout, or to -o, instead of compiling")
	tapFlag   = cmds.Switch("-tap", "open a starlark session over the translation")
	evalExprs = cmds.Collect[string]("-eval")
)

func init() {
	cmds.Define("-file", cmds.Func(func(path string) {
		filePath = path
	}).Desc("the program to translate").Alias("file", "-f"))
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		cmds.PrintUsage()
		os.Exit(2)
	}
	if filePath == "" {
		fmt.Fprintln(os.Stderr, "[ERR] no input file, use -file <path>")
		cmds.PrintUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		loader configs.Loader,
		process Process,
	) {
		if err = loader.Err(); err != nil {
			return
		}
		err = process(ctx, filePath, Options{
			Emit:   *emitFlag,
			Tap:    *tapFlag,
			Evals:  *evalExprs,
			Stdout: os.Stdout,
		})
	})

	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		os.Exit(1)
	}
}
