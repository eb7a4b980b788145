package configs

import (
	"errors"
)

// First decodes the first value found at path, or returns the zero value.
// Decode errors panic; callers check Loader.Err before resolving values.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
