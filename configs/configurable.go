package configs

// Configurable is a value type that names its own path in the config files.
type Configurable interface {
	ConfigExpr() string
}

// FirstOf looks up the path named by T's ConfigExpr.
func FirstOf[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
