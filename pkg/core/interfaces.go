package core

// Logger interface for search diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}
