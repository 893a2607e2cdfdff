// Package logger prints prefixed, coloured log lines.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

var ErrNilWriter = errors.New("logger output must not be nil")

// Logger writes [INFO] and [ERROR] lines under a coloured component prefix.
type Logger struct {
	*log.Logger
}

// New creates a Logger whose lines start with prefix painted in color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}
	p := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{Logger: log.New(out, p, log.LstdFlags)}, nil
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) {
	l.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Error logs msg at error level.
func (l *Logger) Error(msg string) {
	l.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}
