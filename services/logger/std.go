package logsvc

import (
	"log"

	"github.com/trezcool/ratiba/core"
)

// StdLogger only prints to a *log.Logger. Used by the admin CLI and tests.
type StdLogger struct {
	std *log.Logger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	return &StdLogger{std: std}
}

func (l StdLogger) Debug(msg string, args ...interface{}) { printArgs(l.std, "DEBUG", msg, args) }
func (l StdLogger) Info(msg string, args ...interface{})  { printArgs(l.std, "INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...interface{})  { printArgs(l.std, "WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{}) { printArgs(l.std, "ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	printArgs(l.std, "FATAL", msg, args)
	l.std.Fatal(msg)
}

func printArgs(std *log.Logger, level, msg string, args []interface{}) {
	std.Printf("%s: %s", level, msg)
	for _, arg := range args {
		std.Printf("%+v", arg)
	}
}
