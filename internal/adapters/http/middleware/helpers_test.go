package middleware_test

import (
	"bytes"
	"sync"

	"go.uber.org/zap/zapcore"

	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

// syncBuffer is a bytes.Buffer safe for the handler and serving goroutines
// of Timeout to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// newSink returns a structured sink writing every level into a buffer, with
// request ids read from reqctx.
func newSink() (*logging.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	sink := logging.New(zapcore.AddSync(buf), logging.Options{
		Level:    logging.LevelTrace,
		AppName:  "demo-bd-test",
		Provider: reqctx.Provider{},
	})
	return sink, buf
}
