package core

// Logger receives progress messages from rendering code
type Logger interface {
	Printf(format string, args ...interface{})
}
