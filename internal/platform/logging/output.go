package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// FileOptions configures the rotating file output.
type FileOptions struct {
	Path           string
	MaxSizeMB      int
	MaxBackups     int
	MaxAgeDays     int
	Compress       bool
	RotateInterval time.Duration
}

// Output is the set of writers the sink writes to.
type Output struct {
	zapcore.WriteSyncer
	file *timberjack.Logger
}

// NewOutput builds the sink output: console always, plus a rotating file when
// file is non-nil. Writes are serialized across all writers.
func NewOutput(console io.Writer, file *FileOptions) (*Output, error) {
	syncers := []zapcore.WriteSyncer{zapcore.AddSync(console)}

	var fw *timberjack.Logger
	if file != nil {
		if err := os.MkdirAll(filepath.Dir(file.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		fw = &timberjack.Logger{
			Filename:         file.Path,
			MaxSize:          file.MaxSizeMB,
			MaxBackups:       file.MaxBackups,
			MaxAge:           file.MaxAgeDays,
			Compress:         file.Compress,
			LocalTime:        true,
			RotationInterval: file.RotateInterval,
		}
		syncers = append(syncers, zapcore.AddSync(fw))
	}

	return &Output{
		WriteSyncer: zapcore.Lock(zapcore.NewMultiWriteSyncer(syncers...)),
		file:        fw,
	}, nil
}

// FilePath returns the rotating file path, or "" without a file output.
func (o *Output) FilePath() string {
	if o.file == nil {
		return ""
	}
	return o.file.Filename
}

// Close flushes and closes the file output.
func (o *Output) Close() error {
	err := o.Sync()
	if o.file != nil {
		err = errors.Join(err, o.file.Close())
	}
	return err
}

// Name implements ports.HealthChecker.
func (o *Output) Name() string {
	return "log-output"
}

// HealthCheck reports whether the log file directory is still writable.
func (o *Output) HealthCheck(_ context.Context) error {
	if o.file == nil {
		return nil
	}
	dir := filepath.Dir(o.file.Filename)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("log directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("log directory %s is not a directory", dir)
	}
	return nil
}

// ResolveColor decides whether console output is colorized. mode is
// "always", "never" or "auto"; auto colors only when w is a terminal.
func ResolveColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always", "true":
		return true
	case "never", "false":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
