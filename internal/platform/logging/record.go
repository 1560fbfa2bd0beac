package logging

import "time"

// Reserved extra keys filled by the Enricher and rendered in the header line.
const (
	KeyDatetime      = "datetime"
	KeyAppName       = "app_name"
	KeyHost          = "host"
	KeyPID           = "pid"
	KeyCorrelationID = "correlation_id"
	KeyRequestID     = "request_id"
)

var reservedKeys = map[string]bool{
	KeyDatetime:      true,
	KeyAppName:       true,
	KeyHost:          true,
	KeyPID:           true,
	KeyCorrelationID: true,
	KeyRequestID:     true,
}

// Record is a single log event on its way to the sink.
type Record struct {
	Level      Level
	Message    string
	Time       time.Time
	LoggerName string
	Extra      *Fields
	Exception  *ExceptionInfo
	CallSite   *CallSite
}

// Option customizes a record built by Logger.Log.
type Option func(*Record)

// WithField adds one extra field.
func WithField(key string, v any) Option {
	return func(r *Record) {
		r.Extra.Set(key, v)
	}
}

// WithFields adds extra fields from alternating key/value pairs.
func WithFields(kv ...any) Option {
	return func(r *Record) {
		r.Extra.Merge(NewFields(kv...))
	}
}

// WithExtra adds every field of f.
func WithExtra(f *Fields) Option {
	return func(r *Record) {
		r.Extra.Merge(f)
	}
}

// WithException attaches err together with the stack of the caller.
func WithException(err error) Option {
	e := newException(err, 1)
	return func(r *Record) {
		if e != nil {
			r.Exception = e
		}
	}
}

// WithExceptionInfo attaches a pre-captured exception.
func WithExceptionInfo(e *ExceptionInfo) Option {
	return func(r *Record) {
		r.Exception = e
	}
}

// WithCallSite overrides the captured call site.
func WithCallSite(cs *CallSite) Option {
	return func(r *Record) {
		r.CallSite = cs
	}
}

// WithLoggerName sets the originating logger name.
func WithLoggerName(name string) Option {
	return func(r *Record) {
		r.LoggerName = name
	}
}

// WithTime sets the event time. The datetime extra is still filled by the
// enricher unless set explicitly.
func WithTime(t time.Time) Option {
	return func(r *Record) {
		r.Time = t
	}
}
