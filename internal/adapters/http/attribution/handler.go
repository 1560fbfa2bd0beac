// Package attribution resolves which application handler produced a response.
//
// Access-log lines are emitted by middleware, yet they should point at the
// handler that served the request. Handlers are registered wrapped in
// Endpoint; on dispatch the wrapper records the matched route and itself in
// the request's State. After the downstream pipeline returns, a Resolver
// turns that State into a HandlerReference: first through the Registry,
// which describes every route once when the router is built, then by
// describing the recorded endpoint directly. Anything unresolvable yields
// the Unknown sentinels.
package attribution

import (
	"net/http"
	"path"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

// Sentinel values of an unresolved HandlerReference.
const (
	UnknownModule   = "unknown.module"
	UnknownHandler  = "unknown.handler"
	UnknownFile     = "unknown_file"
	UnknownFullPath = "/unknown/path/unknown_file"
)

// inferredSuffix marks a source path synthesized from the package path.
const inferredSuffix = " (inferred)"

// HandlerReference identifies the handler a request was attributed to.
type HandlerReference struct {
	LogicalName string
	Module      string
	File        string
	FullPath    string
	Line        int
}

// Unknown returns the reference used when no handler could be resolved.
func Unknown() HandlerReference {
	return HandlerReference{
		LogicalName: UnknownHandler,
		Module:      UnknownModule,
		File:        UnknownFile,
		FullPath:    UnknownFullPath,
		Line:        0,
	}
}

// IsUnknown reports whether ref is the unresolved sentinel.
func (ref HandlerReference) IsUnknown() bool {
	return ref == Unknown()
}

// Inferred reports whether the source location was synthesized.
func (ref HandlerReference) Inferred() bool {
	return strings.HasSuffix(ref.FullPath, inferredSuffix)
}

// CallSite converts ref for use as a log record call-site override.
func (ref HandlerReference) CallSite() *logging.CallSite {
	return &logging.CallSite{
		LogicalName: ref.LogicalName,
		Module:      ref.Module,
		File:        ref.File,
		FullPath:    ref.FullPath,
		Line:        ref.Line,
	}
}

// Describe resolves the identity and source location of a handler. One level
// of wrapping is removed first: a value with an Unwrap() http.Handler method,
// or a chi inline-middleware chain, is replaced by what it wraps. It never
// panics; anything it cannot describe yields Unknown.
func Describe(h any) (ref HandlerReference) {
	defer func() {
		if recover() != nil {
			ref = Unknown()
		}
	}()

	h = unwrap(h)
	if h == nil {
		return Unknown()
	}

	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Func:
		if v.IsNil() {
			return Unknown()
		}
		return describeFunc(v.Pointer())
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		if v.IsNil() {
			return Unknown()
		}
	}
	return describeType(v.Type())
}

func unwrap(h any) any {
	switch w := h.(type) {
	case *endpoint:
		if w != nil && w.target != nil {
			return w.target
		}
	case *chi.ChainHandler:
		if w != nil && w.Endpoint != nil {
			return w.Endpoint
		}
	case interface{ Unwrap() http.Handler }:
		if inner := w.Unwrap(); inner != nil {
			return inner
		}
	}
	return h
}

func describeFunc(pc uintptr) HandlerReference {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return Unknown()
	}

	module, name := logging.SplitFuncName(fn.Name())
	if name == "" {
		return Unknown()
	}

	ref := HandlerReference{LogicalName: name, Module: module}
	file, line := fn.FileLine(fn.Entry())
	if !sourceKnown(file) {
		// Method values are compiled into wrappers without a source position.
		ref.FullPath, ref.File = inferredPath(module)
		return ref
	}
	ref.FullPath = file
	ref.File = filepath.Base(file)
	ref.Line = line
	return ref
}

// describeType names a handler value by its type. Its ServeHTTP method
// supplies the source location when the type declares one.
func describeType(t reflect.Type) HandlerReference {
	if m, ok := t.MethodByName("ServeHTTP"); ok {
		if ref := describeFunc(m.Func.Pointer()); !ref.IsUnknown() {
			return ref
		}
	}

	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Name() == "" || base.PkgPath() == "" {
		return Unknown()
	}

	ref := HandlerReference{
		LogicalName: base.Name() + ".ServeHTTP",
		Module:      base.PkgPath(),
	}
	ref.FullPath, ref.File = inferredPath(base.PkgPath())
	return ref
}

func sourceKnown(file string) bool {
	return file != "" && file != "?" && !strings.HasPrefix(file, "<")
}

// inferredPath synthesizes "<pkg/path/last.go> (inferred)" from a package
// path.
func inferredPath(module string) (fullPath, file string) {
	file = path.Base(module) + ".go"
	return "<" + module + "/" + file + ">" + inferredSuffix, file
}
