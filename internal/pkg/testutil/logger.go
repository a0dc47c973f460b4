package testutil

import (
	"bytes"
	"sync"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// LogBuffer collects a test's log output. It is safe for concurrent writers.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// SetupTestLogger returns a debug logger whose output is shown only if the test fails.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, _ := CaptureLogs(t)
	return log
}

// CaptureLogs is SetupTestLogger that also hands back the captured output.
func CaptureLogs(t *testing.T) (logger.Logger, *LogBuffer) {
	t.Helper()

	buf := &LogBuffer{}
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("captured logs:\n%s", buf.String())
		}
	})
	return logger.NewWithWriter(buf, config.LogLevelDebug, config.LogFormatText), buf
}
