package compilers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/reusee/tapec/logs"
	"github.com/reusee/tapec/tapeconfigs"
)

// Compiler feeds generated C text to an external compiler through its stdin.
// With Request.Run the program runs with that stdin already consumed, so it
// cannot read input.
type Compiler struct {
	Path   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	Logger logs.Logger
}

// Request describes one compiler invocation.
type Request struct {
	Source string
	Output string
	// Run asks tcc to execute the program from memory instead of writing Output.
	Run bool
}

type GetCompiler func() (*Compiler, error)

func (Module) GetCompiler(
	path tapeconfigs.CompilerPath,
	args tapeconfigs.CompilerArgs,
	logger logs.Logger,
) GetCompiler {
	return func() (*Compiler, error) {
		logger.Info("Getting compiler.")
		resolved, err := Locate(string(path), os.Executable)
		if err != nil {
			return nil, wrap(err)
		}
		logger.Debug("compiler", "path", resolved, "args", []string(args))
		return &Compiler{
			Path:   resolved,
			Args:   args,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Logger: logger,
		}, nil
	}
}

// CommandArgs is the argument list: configured args, "-" for stdin, the
// output, and "-run" last when requested.
func (c *Compiler) CommandArgs(req Request) []string {
	args := append([]string{}, c.Args...)
	args = append(args, "-", "-o", req.Output)
	if req.Run {
		args = append(args, "-run")
	}
	return args
}

func (c *Compiler) Compile(ctx context.Context, req Request) (err error) {
	cmd := exec.CommandContext(ctx, c.Path, c.CommandArgs(req)...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return wrap(err)
	}

	if c.Logger != nil {
		c.Logger.InfoContext(ctx, "Compiling.", "compiler", c.Path, "args", cmd.Args[1:])
	}
	if err := cmd.Start(); err != nil {
		return wrap(fmt.Errorf("call compiler %s: %w", c.Path, err))
	}

	w := bufio.NewWriter(stdin)
	_, writeErr := w.WriteString(req.Source)
	if writeErr == nil {
		writeErr = w.Flush()
	}
	closeErr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		return wrap(fmt.Errorf("compiler %s failed: %w", c.Path, err))
	}
	if writeErr != nil {
		return wrap(writeErr)
	}
	if closeErr != nil {
		return wrap(closeErr)
	}
	return nil
}
