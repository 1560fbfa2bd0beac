package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is a severity in the structured sink's vocabulary. No orders levels;
// Name is what gets rendered.
type Level struct {
	Name string
	No   int
}

// Built-in levels.
var (
	LevelTrace    = Level{Name: "TRACE", No: 5}
	LevelDebug    = Level{Name: "DEBUG", No: 10}
	LevelInfo     = Level{Name: "INFO", No: 20}
	LevelWarning  = Level{Name: "WARNING", No: 30}
	LevelError    = Level{Name: "ERROR", No: 40}
	LevelCritical = Level{Name: "CRITICAL", No: 50}
)

// slog has no TRACE or CRITICAL; these extend its scale by one step each way.
const (
	SlogLevelTrace    = slog.Level(-8)
	SlogLevelCritical = slog.Level(12)
)

var slogLevels = map[slog.Level]Level{
	SlogLevelTrace:    LevelTrace,
	slog.LevelDebug:   LevelDebug,
	slog.LevelInfo:    LevelInfo,
	slog.LevelWarn:    LevelWarning,
	slog.LevelError:   LevelError,
	SlogLevelCritical: LevelCritical,
}

func (l Level) String() string {
	return l.Name
}

// Enabled reports whether l is at or above min.
func (l Level) Enabled(min Level) bool {
	return l.No >= min.No
}

// Slog converts l back onto the slog scale.
func (l Level) Slog() slog.Level {
	for sl, lvl := range slogLevels {
		if lvl == l {
			return sl
		}
	}
	return slogFromNo(l.No)
}

// slogFromNo inverts the No computed by LevelFromSlog for levels without a
// built-in counterpart. That mapping truncates half steps toward INFO, which
// the sign adjustment undoes.
func slogFromNo(no int) slog.Level {
	d := no - LevelInfo.No
	switch {
	case d > 0:
		return slog.Level((2*d + 1) / 5)
	case d < 0:
		return slog.Level((2*d - 1) / 5)
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a configured level name. "warn" is accepted as an alias
// for "warning".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return Level{}, fmt.Errorf("unknown log level %q", s)
	}
}

// LevelFromSlog maps a slog level. Levels without a built-in counterpart keep
// their numeric value as the label.
func LevelFromSlog(l slog.Level) Level {
	if lvl, ok := slogLevels[l]; ok {
		return lvl
	}
	return Level{
		Name: strconv.Itoa(int(l)),
		No:   LevelInfo.No + int(l)*5/2,
	}
}

// LevelFromZap maps a zap level.
func LevelFromZap(l zapcore.Level) Level {
	switch l {
	case zapcore.DebugLevel:
		return LevelDebug
	case zapcore.InfoLevel:
		return LevelInfo
	case zapcore.WarnLevel:
		return LevelWarning
	case zapcore.ErrorLevel:
		return LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return LevelCritical
	default:
		return Level{
			Name: strconv.Itoa(int(l)),
			No:   LevelInfo.No + int(l)*10,
		}
	}
}
