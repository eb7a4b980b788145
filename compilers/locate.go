package compilers

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

var ErrCompilerNotFound = errors.New("compiler not found")

// bundledName is where the compiler is expected relative to the tapec executable.
func bundledName() string {
	if runtime.GOOS == "windows" {
		return filepath.Join("tcc", "tcc.exe")
	}
	return filepath.Join("tcc", "tcc")
}

// Locate resolves the compiler binary. A configured path wins; otherwise the
// bundled tcc next to the executable, then tcc on PATH.
func Locate(configured string, executable func() (string, error)) (string, error) {
	if configured != "" {
		if filepath.IsAbs(configured) || filepath.Base(configured) != configured {
			if _, err := os.Stat(configured); err != nil {
				return "", fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
			}
			return filepath.Abs(configured)
		}
		path, err := exec.LookPath(configured)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
		}
		return path, nil
	}

	if exe, err := executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), bundledName())
		if _, err := os.Stat(candidate); err == nil {
			return filepath.EvalSymlinks(candidate)
		}
	}

	path, err := exec.LookPath("tcc")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
	}
	return path, nil
}
