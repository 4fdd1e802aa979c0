package log

import (
	"fmt"
	"io"
	"os"
)

// Logger is the logging interface used throughout the module.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	w io.Writer
}

// New returns a Logger that writes to stdout.
func New() Logger {
	return &logger{w: os.Stdout}
}

// NewWithWriter returns a Logger that writes to w.
func NewWithWriter(w io.Writer) Logger {
	return &logger{w: w}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[DEBUG]\t"+format+"\n", args...)
}
