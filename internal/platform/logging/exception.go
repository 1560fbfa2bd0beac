package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-stack/stack"
)

// ExceptionInfo is the error attached to a record together with the stack it
// was observed on. Trace holds a pre-rendered stack when frames are not
// available, e.g. for zap entries.
type ExceptionInfo struct {
	Err   error
	Stack stack.CallStack
	Trace string
}

// NewException captures err together with the stack of the caller.
func NewException(err error) *ExceptionInfo {
	return newException(err, 1)
}

func newException(err error, skip int) *ExceptionInfo {
	if err == nil {
		return nil
	}
	cs := stack.Trace()
	if len(cs) > skip+1 {
		cs = cs[skip+1:]
	}
	return &ExceptionInfo{
		Err:   err,
		Stack: cs.TrimRuntime(),
	}
}

// Lines renders the exception as traceback lines without indentation.
func (e *ExceptionInfo) Lines() []string {
	if e == nil {
		return nil
	}

	var lines []string
	if e.Err != nil {
		lines = append(lines, errorLines(e.Err)...)
	}

	switch {
	case len(e.Stack) > 0:
		lines = append(lines, "Traceback (most recent call last):")
		for i := len(e.Stack) - 1; i >= 0; i-- {
			f := e.Stack[i].Frame()
			lines = append(lines, fmt.Sprintf("  File %q, line %d, in %s", f.File, f.Line, f.Function))
		}
	case e.Trace != "":
		lines = append(lines, "Traceback (most recent call last):")
		lines = append(lines, strings.Split(strings.TrimRight(e.Trace, "\n"), "\n")...)
	}
	return lines
}

// errorLines renders err and every error it wraps. Joined errors are
// expanded in order.
func errorLines(err error) []string {
	lines := []string{describeError(err)}

	var walk func(error)
	walk = func(e error) {
		var causes []error
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			causes = u.Unwrap()
		default:
			if c := errors.Unwrap(e); c != nil {
				causes = []error{c}
			}
		}
		for _, c := range causes {
			if c == nil {
				continue
			}
			lines = append(lines, "caused by "+describeError(c))
			walk(c)
		}
	}
	walk(err)
	return lines
}

func describeError(err error) string {
	return fmt.Sprintf("%T: %s", err, err.Error())
}
