// Package logging builds the process logger. The terminal belongs to the UI,
// so entries go to a rotating file or nowhere.
package logging

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	File  string
	Level string
}

// New returns a JSON logger and a closer for its output. The closer is a no-op
// when no file is configured.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", raw, err)
		}
		level = parsed
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.JSONFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			function = path.Base(f.Function)
			file = path.Base(f.File) + ":" + strconv.Itoa(f.Line)
			return
		},
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})

	if strings.TrimSpace(opts.File) == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}
	w := NewLogWriter(opts.File)
	logger.SetOutput(w)
	return logger, w, nil
}

func NewLogWriter(filepath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:  filepath,
		MaxSize:   20,
		Compress:  true,
		LocalTime: true,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
