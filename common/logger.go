package common

import (
	"github.com/inconshreveable/log15"
)

// Logger is embedded by the types which need their own logging context.
type Logger struct {
	log log15.Logger
}

func NewLogger(logger log15.Logger, ctx ...interface{}) *Logger {
	return &Logger{log: logger.New(ctx...)}
}

func (l *Logger) Log() log15.Logger {
	return l.log
}

func (l *Logger) SetLogger(logger log15.Logger) *Logger {
	l.log = logger

	return l
}
