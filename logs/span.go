package logs

// Span identifies one translation run in log records and returned errors.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
