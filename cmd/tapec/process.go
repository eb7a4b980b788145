package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/tapec/compilers"
	"github.com/reusee/tapec/debugs"
	"github.com/reusee/tapec/logs"
	"github.com/reusee/tapec/tapeconfigs"
	"github.com/reusee/tapec/translates"
)

type Options struct {
	// Emit writes the C text instead of compiling it.
	Emit bool
	// Tap opens an interactive session after translation.
	Tap bool
	// Evals are starlark expressions printed one per line after translation.
	Evals  []string
	Stdout io.Writer
}

// Process translates the file at path and hands the result on.
type Process func(ctx context.Context, path string, opts Options) error

func (Module) Process(
	translateFile translates.TranslateFile,
	getCompiler compilers.GetCompiler,
	tap debugs.Tap,
	outputPath tapeconfigs.OutputPath,
	run tapeconfigs.Run,
	logger logs.Logger,
) Process {
	return func(ctx context.Context, path string, opts Options) error {
		result, err := translateFile(ctx, path)
		if err != nil {
			return err
		}

		if len(opts.Evals) > 0 || opts.Tap {
			globals := debugs.TranslationGlobals(result)
			for _, expr := range opts.Evals {
				value, err := debugs.Eval(expr, globals)
				if err != nil {
					return fmt.Errorf("eval %s: %w", expr, err)
				}
				fmt.Fprintln(opts.Stdout, value)
			}
			if opts.Tap {
				tap(ctx, path, globals)
			}
		}

		output := string(outputPath)

		if opts.Emit {
			if output == "" {
				_, err := io.WriteString(opts.Stdout, result.C)
				return err
			}
			logger.InfoContext(ctx, "Writing C source.", "path", output)
			return os.WriteFile(output, []byte(result.C), 0644)
		}

		if output == "" {
			base := filepath.Base(path)
			output = strings.TrimSuffix(base, filepath.Ext(base)) + ".exe"
		}
		compiler, err := getCompiler()
		if err != nil {
			return err
		}
		if err := compiler.Compile(ctx, compilers.Request{
			Source: result.C,
			Output: output,
			Run:    bool(run),
		}); err != nil {
			return err
		}
		logger.InfoContext(ctx, "Done.", "output", output)
		return nil
	}
}
