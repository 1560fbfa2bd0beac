package logging

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the datetime rendering: UTC with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// ExceptionMarker prefixes every traceback line.
const ExceptionMarker = "  ┆ "

const nilValue = "-"

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiWhite = "\x1b[37m"
	ansiBlue  = "\x1b[34m"
	ansiCyan  = "\x1b[36m"
)

var levelColors = map[string]string{
	LevelTrace.Name:    "\x1b[1;36m",
	LevelDebug.Name:    "\x1b[1;34m",
	LevelInfo.Name:     "\x1b[1m",
	LevelWarning.Name:  "\x1b[1;33m",
	LevelError.Name:    "\x1b[1;31m",
	LevelCritical.Name: "\x1b[1;41m",
}

// Formatter renders records into the pipe-delimited text layout:
//
//	datetime | app | host | pid | correlation id | request id | LEVEL    | module:function:line | message
//
// followed by one block per non-reserved extra field and an optional
// exception block.
type Formatter struct {
	Colorize bool
	Width    int
	// Redact, when set, may replace an extra value before it is rendered.
	Redact func(key string, v any) any
}

// NewFormatter returns a Formatter with masq redaction of extra fields.
func NewFormatter(colorize bool) *Formatter {
	return &Formatter{
		Colorize: colorize,
		Width:    DefaultPrettyWidth,
		Redact:   RedactValue,
	}
}

// Format renders r. The result always ends with exactly one newline.
func (f *Formatter) Format(r *Record) string {
	var b strings.Builder

	levelColor := levelColors[r.Level.Name]

	b.WriteString(f.paint(ansiGreen, formatTime(extraValue(r, KeyDatetime))))
	b.WriteString(" | ")
	b.WriteString(f.paint(ansiGreen, renderValue(extraValue(r, KeyAppName))))
	b.WriteString(" | ")
	b.WriteString(f.paint(ansiGreen, renderValue(extraValue(r, KeyHost))))
	b.WriteString(" | ")
	b.WriteString(f.paint(ansiGreen, renderValue(extraValue(r, KeyPID))))
	b.WriteString(" | ")
	b.WriteString(f.paint(ansiWhite, renderValue(extraValue(r, KeyCorrelationID))))
	b.WriteString(" | ")
	b.WriteString(f.paint(ansiBlue, renderValue(extraValue(r, KeyRequestID))))
	b.WriteString(" | ")
	b.WriteString(f.paint(levelColor, fmt.Sprintf("%-8s", r.Level.Name)))
	b.WriteString(" | ")

	name, function, line := callSiteParts(r)
	b.WriteString(f.paint(ansiCyan, name))
	b.WriteString(":")
	b.WriteString(f.paint(ansiCyan, function))
	b.WriteString(":")
	b.WriteString(f.paint(ansiCyan, line))
	b.WriteString(" | ")
	b.WriteString(f.paint(levelColor, r.Message))

	for _, key := range r.Extra.Keys() {
		if reservedKeys[key] {
			continue
		}
		v, _ := r.Extra.Get(key)
		if f.Redact != nil {
			v = f.Redact(key, v)
		}
		b.WriteString("\n")
		b.WriteString(f.paint(levelColor, key+":\n"+Pretty(v, f.Width)))
	}

	if lines := r.Exception.Lines(); len(lines) > 0 {
		for _, l := range lines {
			b.WriteString("\n")
			b.WriteString(ExceptionMarker)
			b.WriteString(l)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (f *Formatter) paint(color, s string) string {
	if !f.Colorize || color == "" {
		return s
	}
	return color + s + ansiReset
}

func extraValue(r *Record, key string) any {
	v, _ := r.Extra.Get(key)
	return v
}

func callSiteParts(r *Record) (name, function, line string) {
	cs := r.CallSite
	if cs == nil {
		name = r.LoggerName
		if name == "" {
			name = nilValue
		}
		return name, "<unknown>", "0"
	}

	name = cs.Module
	if name == "" {
		name = r.LoggerName
	}
	if name == "" {
		name = nilValue
	}
	function = cs.LogicalName
	if function == "" {
		function = "<unknown>"
	}
	return name, function, strconv.Itoa(cs.Line)
}

func formatTime(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(TimestampLayout)
	}
	return renderValue(v)
}

func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return nilValue
	case string:
		if x == "" {
			return nilValue
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}
