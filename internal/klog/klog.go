// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package klog is a small leveled logger used by cmd/kontrepl to print
// trace and diagnostic output, colored the way kanso's error reporter
// colors compiler diagnostics: bold/faint for structure, a level color
// for the tag.
package klog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Level is a logging severity, ordered low to high.
type Level int

const (
	LevelTrace Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) tag() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "?"
	}
}

func (l Level) color() *color.Color {
	switch l {
	case LevelTrace:
		return color.New(color.Faint)
	case LevelInfo:
		return color.New(color.FgCyan)
	case LevelWarn:
		return color.New(color.FgYellow, color.Bold)
	case LevelError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New()
	}
}

// Logger writes leveled, colored lines to an io.Writer, filtering
// anything below its configured Level.
type Logger struct {
	out io.Writer
	min Level
}

// New returns a Logger writing to w that passes min and above.
func New(w io.Writer, min Level) *Logger {
	return &Logger{out: w, min: min}
}

// Default returns a Logger writing to os.Stderr at LevelInfo.
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

func (lg *Logger) log(lvl Level, format string, args ...any) {
	if lvl < lg.min {
		return
	}
	tag := lvl.color().Sprintf("[%-5s]", lvl.tag())
	fmt.Fprintf(lg.out, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

func (lg *Logger) Trace(format string, args ...any) { lg.log(LevelTrace, format, args...) }
func (lg *Logger) Info(format string, args ...any)  { lg.log(LevelInfo, format, args...) }
func (lg *Logger) Warn(format string, args ...any)  { lg.log(LevelWarn, format, args...) }
func (lg *Logger) Error(format string, args ...any) { lg.log(LevelError, format, args...) }
