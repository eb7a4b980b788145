package translates

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/tapec/logs"
	"github.com/reusee/tapec/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}

// TranslateFile reads and translates the file at path.
type TranslateFile func(ctx context.Context, path string) (*Result, error)

func (Module) TranslateFile(
	debug tapeconfigs.Debug,
	strict tapeconfigs.StrictBrackets,
	logger logs.Logger,
	newSpan logs.NewSpan,
) TranslateFile {
	return func(ctx context.Context, path string) (_ *Result, err error) {
		ctx, _ = newSpan(ctx, "translate")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		logger.InfoContext(ctx, "Reading from file.", "path", path)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file: %w", err)
		}

		name := filepath.Base(path)
		logger.InfoContext(ctx, "Filtering characters and testing for mismatched brackets.")
		result, err := Translate(name, string(content), Options{
			Debug:  bool(debug),
			Strict: bool(strict),
		})
		if err != nil {
			return nil, err
		}

		logger.InfoContext(ctx, "Parsed code.",
			"instructions", len(result.Unit.Text)-strings.Count(result.Unit.Text, "\n"),
			"statements", len(result.Program.Stmts),
			"debug", bool(debug),
		)
		if logger.Enabled(ctx, slog.LevelDebug) {
			counts := result.Program.Counts()
			for _, kind := range slices.Sorted(maps.Keys(counts)) {
				logger.DebugContext(ctx, "statements", "kind", kind.String(), "count", counts[kind])
			}
		}
		return result, nil
	}
}
