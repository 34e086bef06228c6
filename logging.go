package combo

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combo")

// LogLevel for Parser.Log.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) commonlog() commonlog.Level {
	switch l {
	case InfoLevel:
		return commonlog.Info
	case WarnLevel:
		return commonlog.Warning
	case ErrorLevel:
		return commonlog.Error
	}
	return commonlog.Debug
}

func (l LogLevel) String() string {
	switch l {
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	}
	return "debug"
}

// Log the outcome of every evaluation of p as "name = <outcome>" at level.
//
// Logging has no effect on the outcome.
func (p Parser[I, A]) Log(name string, level LogLevel) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		r := p.run(c)
		if log.AllowLevel(level.commonlog()) {
			message := name + " = " + outcome(r)
			switch level {
			case InfoLevel:
				log.Info(message, "offset", c.offset)
			case WarnLevel:
				log.Warning(message, "offset", c.offset)
			case ErrorLevel:
				log.Error(message, "offset", c.offset)
			default:
				log.Debug(message, "offset", c.offset)
			}
		}
		return r
	})
}

// Debug is Log at DebugLevel.
func (p Parser[I, A]) Debug(name string) Parser[I, A] { return p.Log(name, DebugLevel) }

// Info is Log at InfoLevel.
func (p Parser[I, A]) Info(name string) Parser[I, A] { return p.Log(name, InfoLevel) }

// Warn is Log at WarnLevel.
func (p Parser[I, A]) Warn(name string) Parser[I, A] { return p.Log(name, WarnLevel) }

// Error is Log at ErrorLevel.
func (p Parser[I, A]) Error(name string) Parser[I, A] { return p.Log(name, ErrorLevel) }

// Name labels p for diagnostics.
//
// A failure inside p that is not already labelled is wrapped as "failed to parse
// <label>", keeping the original error as its Cause. Kind and commit status are
// unchanged. Named nodes also write to the Trace sink.
func (p Parser[I, A]) Name(label string) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		traceEnter(c, label)
		r := p.run(c)
		traceExit(c, label, r)
		if r.Err != nil {
			r.Err = r.Err.withLabel(label)
		}
		return r
	})
}
