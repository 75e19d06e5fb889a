package log

import (
	"bytes"
	"strings"
	"testing"
)

func withBuffer(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut, prevLevel := Output, Level
	Output, Level = buf, level
	t.Cleanup(func() {
		Output, Level = prevOut, prevLevel
	})
	return buf
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level             LogLevel
		warn, info, debug bool
	}{
		{LogLevel_None, false, false, false},
		{LogLevel_Warn, true, false, false},
		{LogLevel_Info, true, true, false},
		{LogLevel_Debug, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf := withBuffer(t, tt.level)
			Warnf("w%d", 1)
			Infof("i%d", 2)
			Debugf("d%d", 3)
			out := buf.String()
			if got := strings.Contains(out, "[WARNING] w1"); got != tt.warn {
				t.Errorf("warn printed = %v, want %v", got, tt.warn)
			}
			if got := strings.Contains(out, "i2"); got != tt.info {
				t.Errorf("info printed = %v, want %v", got, tt.info)
			}
			if got := strings.Contains(out, "d3"); got != tt.debug {
				t.Errorf("debug printed = %v, want %v", got, tt.debug)
			}
		})
	}
}

func TestDebugIndent(t *testing.T) {
	buf := withBuffer(t, LogLevel_Debug)
	Enter()
	Debugf("nested")
	Leave()
	Leave()
	Debugf("top")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "  nested") {
		t.Errorf("nested line not indented: %q", lines[0])
	}
	if strings.Contains(lines[1], "  top") {
		t.Errorf("indent leaked below zero: %q", lines[1])
	}
}

func TestSetLevelByFlags(t *testing.T) {
	withBuffer(t, LogLevel_Info)
	SetLevelByFlags(false, false, true)
	if Level != LogLevel_Warn {
		t.Errorf("quiet: got %s", Level)
	}
	SetLevelByFlags(false, true, true)
	if Level != LogLevel_None {
		t.Errorf("silent: got %s", Level)
	}
	SetLevelByFlags(true, true, false)
	if Level != LogLevel_Debug {
		t.Errorf("debug: got %s", Level)
	}
}
