package logging

import (
	"context"
	"log"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/go-stack/stack"
	"go.uber.org/zap"
)

// RootLoggerName names records that carry no logger name.
const RootLoggerName = "root"

// LoggerKey is the slog attribute that names the originating logger. It is
// consumed by the bridge and not rendered as an extra field.
const LoggerKey = "logger"

// interceptConfig is one Setup call's configuration. It is never mutated
// after it is published.
type interceptConfig struct {
	level   Level
	modules []string
	ignored map[string]bool
}

// interceptState is shared by an Intercept and every handler derived from it.
type interceptState struct {
	sink     *Logger
	cfg      atomic.Pointer[interceptConfig]
	mu       sync.Mutex
	restores []func()
}

// moduleHooks route ecosystem facilities that keep their own global logger
// through the bridge. Each hook returns a func restoring the previous state.
var moduleHooks = map[string]func(*Intercept) func(){
	"zap": func(i *Intercept) func() {
		return zap.ReplaceGlobals(i.ZapLogger("zap"))
	},
}

// Intercept is a slog.Handler that re-emits every record through the
// structured sink. Records from ignored logger names are dropped before any
// other processing.
type Intercept struct {
	st     *interceptState
	name   string
	attrs  []slog.Attr
	groups []string
}

// NewIntercept returns a bridge writing to sink. A nil sink follows Default.
// Until Setup is called every level passes and nothing is ignored.
func NewIntercept(sink *Logger) *Intercept {
	st := &interceptState{sink: sink}
	st.cfg.Store(&interceptConfig{ignored: map[string]bool{}})
	return &Intercept{st: st}
}

// Setup installs the bridge as the slog default handler, which also routes
// the standard log package through it, and applies level, modules and the
// ignore set. Calling Setup again replaces the previous configuration
// entirely; records are never emitted twice.
func (i *Intercept) Setup(level Level, modules, ignored []string) {
	i.st.mu.Lock()
	defer i.st.mu.Unlock()

	for _, restore := range slices.Backward(i.st.restores) {
		restore()
	}
	i.st.restores = nil

	cfg := &interceptConfig{
		level:   level,
		modules: slices.Clone(modules),
		ignored: make(map[string]bool, len(ignored)),
	}
	for _, name := range ignored {
		cfg.ignored[name] = true
	}
	i.st.cfg.Store(cfg)

	// slog only records the caller of log.Print when file flags are set.
	log.SetFlags(log.Lshortfile)
	slog.SetDefault(slog.New(i.root()))

	for _, m := range cfg.modules {
		if hook, ok := moduleHooks[m]; ok {
			i.st.restores = append(i.st.restores, hook(i))
		}
	}
}

// Modules returns the logger names configured by the last Setup.
func (i *Intercept) Modules() []string {
	return slices.Clone(i.st.cfg.Load().modules)
}

// Ignored reports whether records from name are dropped.
func (i *Intercept) Ignored(name string) bool {
	return i.st.cfg.Load().ignored[loggerName(name)]
}

// Logger returns a slog logger whose records carry name.
func (i *Intercept) Logger(name string) *slog.Logger {
	return slog.New(i.named(name))
}

// StdLogger returns a standard library logger writing through the bridge at
// level, e.g. for http.Server.ErrorLog.
func (i *Intercept) StdLogger(name string, level Level) *log.Logger {
	return slog.NewLogLogger(i.named(name), level.Slog())
}

// Enabled implements slog.Handler. An unnamed handler may still receive
// records naming their logger through LoggerKey, so its ignore check is left
// to Handle.
func (i *Intercept) Enabled(_ context.Context, level slog.Level) bool {
	cfg := i.st.cfg.Load()
	if i.name != "" && cfg.ignored[i.name] {
		return false
	}
	return LevelFromSlog(level).Enabled(cfg.level) && i.sink().Enabled(LevelFromSlog(level))
}

// Handle implements slog.Handler.
func (i *Intercept) Handle(ctx context.Context, r slog.Record) error {
	cfg := i.st.cfg.Load()

	name := i.name
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == LoggerKey && len(i.groups) == 0 {
			name = a.Value.String()
			return false
		}
		return true
	})
	if cfg.ignored[loggerName(name)] {
		return nil
	}

	level := LevelFromSlog(r.Level)
	if !level.Enabled(cfg.level) {
		return nil
	}

	rec := mapRecord(r, i.attrs, i.groups)
	rec.LoggerName = loggerName(name)
	if rec.Exception != nil {
		rec.Exception.Stack = callerStack()
	}
	i.sink().Write(ctx, &rec)
	return nil
}

// WithAttrs implements slog.Handler.
func (i *Intercept) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := i.clone()
	for _, a := range attrs {
		if a.Key == LoggerKey && len(c.groups) == 0 {
			c.name = a.Value.String()
			continue
		}
		c.attrs = append(c.attrs, prefixAttr(c.groups, a))
	}
	return c
}

// WithGroup implements slog.Handler.
func (i *Intercept) WithGroup(name string) slog.Handler {
	if name == "" {
		return i
	}
	c := i.clone()
	c.groups = append(c.groups, name)
	return c
}

func (i *Intercept) clone() *Intercept {
	return &Intercept{
		st:     i.st,
		name:   i.name,
		attrs:  slices.Clip(i.attrs),
		groups: slices.Clip(i.groups),
	}
}

func (i *Intercept) named(name string) *Intercept {
	c := i.clone()
	c.name = name
	return c
}

func (i *Intercept) root() *Intercept {
	return &Intercept{st: i.st}
}

func (i *Intercept) sink() *Logger {
	if i.st.sink != nil {
		return i.st.sink
	}
	return Default()
}

// MapRecord converts a slog record into a sink record. Attributes become
// extra fields with group names joined by "."; an error under the key
// "error", "err" or "exception" becomes the record's exception. The "logger"
// attribute is not included.
func MapRecord(r slog.Record) Record {
	return mapRecord(r, nil, nil)
}

func mapRecord(r slog.Record, attrs []slog.Attr, groups []string) Record {
	rec := Record{
		Level:    LevelFromSlog(r.Level),
		Message:  r.Message,
		Time:     r.Time,
		Extra:    &Fields{},
		CallSite: CallSiteFromPC(r.PC),
	}

	add := func(a slog.Attr) {
		if len(groups) == 0 && a.Key == LoggerKey {
			return
		}
		if rec.Exception == nil && len(groups) == 0 && isExceptionKey(a.Key) {
			if err, ok := a.Value.Resolve().Any().(error); ok {
				rec.Exception = &ExceptionInfo{Err: err}
				return
			}
		}
		flattenAttr(rec.Extra, "", a)
	}

	for _, a := range attrs {
		flattenAttr(rec.Extra, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(prefixAttr(groups, a))
		return true
	})
	return rec
}

func isExceptionKey(key string) bool {
	switch key {
	case "error", "err", "exception":
		return true
	}
	return false
}

// prefixAttr nests a under the open groups.
func prefixAttr(groups []string, a slog.Attr) slog.Attr {
	for _, g := range slices.Backward(groups) {
		a = slog.Attr{Key: g, Value: slog.GroupValue(a)}
	}
	return a
}

func flattenAttr(f *Fields, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if prefix != "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			flattenAttr(f, key, ga)
		}
		return
	}
	f.Set(key, a.Value.Any())
}

func loggerName(name string) string {
	if name == "" {
		return RootLoggerName
	}
	return name
}

var bridgePackages = []string{"log", "log/slog", "go.uber.org/zap", "go.uber.org/zap/zapcore", loggingPackage}

var loggingPackage = func() string {
	module, _ := SplitFuncName(stack.Caller(0).Frame().Function)
	return module
}()

// callerStack returns the current stack without the frames of the logging
// machinery, so that it starts at the code that issued the log call.
func callerStack() stack.CallStack {
	cs := stack.Trace().TrimRuntime()
	for len(cs) > 0 {
		module, _ := SplitFuncName(cs[0].Frame().Function)
		if !slices.Contains(bridgePackages, module) {
			break
		}
		cs = cs[1:]
	}
	return cs
}

var (
	bridgeMu sync.Mutex
	bridge   *Intercept
)

// Bridge returns the process-wide Intercept, which writes to Default.
func Bridge() *Intercept {
	bridgeMu.Lock()
	defer bridgeMu.Unlock()
	if bridge == nil {
		bridge = NewIntercept(nil)
	}
	return bridge
}

// SetupIntercept configures the process-wide bridge. See Intercept.Setup.
func SetupIntercept(level Level, modules, ignored []string) *Intercept {
	b := Bridge()
	b.Setup(level, modules, ignored)
	return b
}
