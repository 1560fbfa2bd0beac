package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger returns a zap logger whose entries are written through the
// bridge under name. Entries carry their caller and, from ERROR up, a stack.
func (i *Intercept) ZapLogger(name string) *zap.Logger {
	return zap.New(&zapCore{i: i.named(name)},
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// zapCore adapts the bridge to zapcore.Core.
type zapCore struct {
	i      *Intercept
	fields []zapcore.Field
}

var _ zapcore.Core = (*zapCore)(nil)

func (c *zapCore) Enabled(l zapcore.Level) bool {
	cfg := c.i.st.cfg.Load()
	return LevelFromZap(l).Enabled(cfg.level) && c.i.sink().Enabled(LevelFromZap(l))
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	return &zapCore{
		i:      c.i,
		fields: append(c.fields[:len(c.fields):len(c.fields)], fields...),
	}
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.i.Ignored(c.entryName(ent)) || !c.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	name := c.entryName(ent)
	if c.i.Ignored(name) {
		return nil
	}

	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)

	rec := MapZapEntry(ent, all)
	rec.LoggerName = name
	c.i.sink().Write(context.Background(), &rec)
	return nil
}

func (c *zapCore) Sync() error {
	return c.i.sink().Sync()
}

func (c *zapCore) entryName(ent zapcore.Entry) string {
	if ent.LoggerName != "" {
		return ent.LoggerName
	}
	return loggerName(c.i.name)
}

// MapZapEntry converts a zap entry and its fields into a sink record. The
// first error field becomes the exception, with the entry stack as its trace.
// Other fields become extras in order.
func MapZapEntry(ent zapcore.Entry, fields []zapcore.Field) Record {
	rec := Record{
		Level:   LevelFromZap(ent.Level),
		Message: ent.Message,
		Time:    ent.Time,
		Extra:   &Fields{},
	}
	if ent.Caller.Defined {
		rec.CallSite = zapCallSite(ent.Caller)
	}

	prefix := ""
	for _, f := range fields {
		switch f.Type {
		case zapcore.ErrorType:
			if err, ok := f.Interface.(error); ok && rec.Exception == nil {
				rec.Exception = &ExceptionInfo{Err: err, Trace: ent.Stack}
				continue
			}
		case zapcore.NamespaceType:
			prefix = joinKey(prefix, f.Key)
			continue
		case zapcore.SkipType:
			continue
		}

		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		for k, v := range enc.Fields {
			rec.Extra.Set(joinKey(prefix, k), v)
		}
	}

	if rec.Exception == nil && ent.Stack != "" {
		rec.Extra.Set("stacktrace", ent.Stack)
	}
	return rec
}

func zapCallSite(c zapcore.EntryCaller) *CallSite {
	if cs := CallSiteFromPC(c.PC); cs != nil {
		return cs
	}
	module, name := SplitFuncName(c.Function)
	return &CallSite{
		LogicalName: name,
		Module:      module,
		File:        c.TrimmedPath(),
		FullPath:    c.File,
		Line:        c.Line,
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
