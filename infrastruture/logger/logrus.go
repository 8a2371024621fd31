// Package logger adapts logrus to the services' Logger interface. Every
// component gets its own named, colored prefix so interleaved output stays
// readable.
package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// Logger writes leveled lines prefixed with a colored component name.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger named name whose prefix is printed in color.
func New(name, color string, out io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if out == nil {
		return nil, errors.New("logger output is required")
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&prefixFormatter{
		prefix: fmt.Sprintf("%s[%s]%s ", color, name, colorReset),
		inner: &logrus.TextFormatter{
			DisableColors:   color == "",
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})

	return &Logger{entry: logrus.NewEntry(base).WithField("component", name)}, nil
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter puts the component prefix in front of each formatted line.
type prefixFormatter struct {
	prefix string
	inner  logrus.Formatter
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	line, err := f.inner.Format(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(f.prefix), line...), nil
}
