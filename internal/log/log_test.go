package log

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/pubsub"
)

// swapLogger installs an in-memory logger for the duration of a test.
func swapLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := defaultLogger
	defaultLogger = &Logger{
		writer:   &buf,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}
	t.Cleanup(func() { defaultLogger = old })
	return &buf
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestWriteFormatsEntry(t *testing.T) {
	buf := swapLogger(t)

	Info(CatUEX, "fetch done", "path", "/commodities", "count", 3)

	line := buf.String()
	assert.Contains(t, line, "[INFO] [uex] fetch done")
	assert.Contains(t, line, "path=/commodities")
	assert.Contains(t, line, "count=3")
}

func TestWriteOddFieldCount(t *testing.T) {
	buf := swapLogger(t)

	Warn(CatServer, "dangling", "orphan")

	assert.Contains(t, buf.String(), "orphan=<missing>")
}

func TestErrorErrAttachesError(t *testing.T) {
	buf := swapLogger(t)

	ErrorErr(CatDB, "save failed", assert.AnError)

	line := buf.String()
	assert.Contains(t, line, "[ERROR] [db] save failed")
	assert.Contains(t, line, "error="+assert.AnError.Error())
}

func TestMinLevelFilters(t *testing.T) {
	buf := swapLogger(t)
	SetMinLevel(LevelWarn)

	Debug(CatItems, "too quiet")
	Info(CatItems, "still too quiet")
	Warn(CatItems, "loud enough")

	line := buf.String()
	assert.NotContains(t, line, "too quiet")
	assert.Contains(t, line, "loud enough")
}

func TestDisabledWritesNothing(t *testing.T) {
	buf := swapLogger(t)
	SetEnabled(false)

	Error(CatIntel, "should not appear")

	assert.Empty(t, buf.String())
}

func TestSubscribeReceivesEntries(t *testing.T) {
	swapLogger(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := Subscribe(ctx)
	require.NotNil(t, ch)

	Info(CatWatcher, "file changed", "path", "items.yaml")

	select {
	case event := <-ch:
		assert.Contains(t, event.Payload, "file changed")
	case <-time.After(time.Second):
		t.Fatal("no log event received")
	}
}
