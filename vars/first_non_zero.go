package vars

// FirstNonZero returns the first value that is not the zero value of T.
// Settings are resolved with it in precedence order: flag, config file, default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
