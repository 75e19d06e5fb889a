package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevel_None:
		return "none"
	case LogLevel_Warn:
		return "warn"
	case LogLevel_Info:
		return "info"
	case LogLevel_Debug:
		return "debug"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

var Level LogLevel = LogLevel_Info

// Output receives every message. Tests swap it for a buffer.
var Output io.Writer = os.Stderr

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

// SetLevelByFlags applies the --debug / --silent / --quiet switches shared by all subcommands.
func SetLevelByFlags(debug, silent, quiet bool) {
	if debug {
		Level = LogLevel_Debug
	} else if silent {
		Level = LogLevel_None
	} else if quiet {
		Level = LogLevel_Warn
	}
}

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

var indent atomic.Int32

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(Output, strings.Repeat("  ", int(indent.Load()))+f+"\n", args...)
	}
}

func Enter() {
	indent.Add(1)
}

func Leave() {
	for {
		n := indent.Load()
		if n <= 0 || indent.CompareAndSwap(n, n-1) {
			return
		}
	}
}
