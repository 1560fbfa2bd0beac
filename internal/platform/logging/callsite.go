package logging

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-stack/stack"
)

// CallSite is the logical source location a record is attributed to. It may
// differ from where the logging call physically runs, e.g. for access-log
// lines emitted by middleware on behalf of a handler.
type CallSite struct {
	LogicalName string
	Module      string
	File        string
	FullPath    string
	Line        int
}

// Caller captures the call site skip frames above the caller of Caller.
func Caller(skip int) *CallSite {
	c := stack.Caller(skip + 1)
	return CallSiteFromFrame(c.Frame())
}

// CallSiteFromPC resolves a program counter as recorded by slog.Record.PC.
// It returns nil for a zero pc.
func CallSiteFromPC(pc uintptr) *CallSite {
	if pc == 0 {
		return nil
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.Function == "" && f.File == "" {
		return nil
	}
	return CallSiteFromFrame(f)
}

// CallSiteFromFrame converts a runtime frame.
func CallSiteFromFrame(f runtime.Frame) *CallSite {
	module, name := SplitFuncName(f.Function)
	return &CallSite{
		LogicalName: name,
		Module:      module,
		File:        filepath.Base(f.File),
		FullPath:    f.File,
		Line:        f.Line,
	}
}

// SplitFuncName splits a fully qualified Go function name into its package
// path and the function name within the package. Method receivers lose their
// pointer decoration and method values lose the "-fm" suffix:
//
//	github.com/a/b/handlers.(*Health).Live-fm -> github.com/a/b/handlers, Health.Live
func SplitFuncName(full string) (module, name string) {
	if full == "" {
		return "", ""
	}
	full = strings.TrimSuffix(full, "-fm")

	lastSlash := strings.LastIndex(full, "/")
	dot := strings.Index(full[lastSlash+1:], ".")
	if dot < 0 {
		return full, ""
	}
	dot += lastSlash + 1

	// The linker escapes dots in the last path element, e.g. yaml%2ev3.
	module = strings.ReplaceAll(full[:dot], "%2e", ".")
	name = full[dot+1:]
	if strings.HasPrefix(name, "(*") {
		if end := strings.Index(name, ")"); end > 0 {
			name = name[2:end] + name[end+1:]
		}
	}
	return module, name
}
