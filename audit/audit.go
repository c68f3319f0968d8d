// Package audit is the append-only event side channel. Sinks are
// fire-and-forget: a failing sink never aborts the operation that emitted
// the event.
package audit

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Sink interface {
	Info(message string)
	Error(message string)
}

// LogSink appends events to a log file through logrus, falling back to
// stderr when the file cannot be opened.
type LogSink struct {
	log *logrus.Logger
}

func NewLogSink(path string) *LogSink {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			log.SetOutput(f)
		}
	}
	return &LogSink{log: log}
}

func NewWriterSink(w io.Writer) *LogSink {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(w)
	return &LogSink{log: log}
}

func (s *LogSink) Info(message string)  { s.log.Info(message) }
func (s *LogSink) Error(message string) { s.log.Error(message) }

// Fanout replicates events to every sink.
type Fanout []Sink

func (f Fanout) Info(message string) {
	for _, s := range f {
		s.Info(message)
	}
}

func (f Fanout) Error(message string) {
	for _, s := range f {
		s.Error(message)
	}
}

// Discard drops everything; useful in tests that do not assert on events.
type Discard struct{}

func (Discard) Info(string)  {}
func (Discard) Error(string) {}
