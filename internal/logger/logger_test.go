package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureEntry redirects l into a buffer, runs emit and decodes the single
// JSON entry it produced.
func captureEntry(t *testing.T, l *Logger, emit func(l *Logger)) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	emit(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "expected one JSON log entry, got %q", buf.String())
	return entry
}

func TestNewLogger_EmitsRoleTimestampAndCaller(t *testing.T) {
	entry := captureEntry(t, NewLogger("pin-vault-server"), func(l *Logger) {
		l.Info().Msg("startup")
	})

	assert.Equal(t, "pin-vault-server", entry["role"])
	assert.Contains(t, entry, "time")

	// the caller field carries the function name, not file:line
	fn, _ := entry["func"].(string)
	assert.Contains(t, fn, "TestNewLogger_EmitsRoleTimestampAndCaller")
}

func TestNewLogger_DebugLevelEntriesPass(t *testing.T) {
	entry := captureEntry(t, NewLogger("pin-vault-server"), func(l *Logger) {
		l.Debug().Str("key", "pin_items").Msg("loaded")
	})

	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "pin_items", entry["key"])
}

func TestNop_DiscardsEverything(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_FieldsStayOnTheChild(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer

	parent := NewLogger("pin-vault-server")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc-123")
	})

	child.Info().Msg("scoped")
	parent.Info().Msg("plain")

	var childEntry, parentEntry map[string]any
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))

	// the child inherits role and adds its own field; the parent is untouched
	assert.Equal(t, "pin-vault-server", childEntry["role"])
	assert.Equal(t, "abc-123", childEntry["trace_id"])
	assert.NotContains(t, parentEntry, "trace_id")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := zerolog.New(&buf).With().Str("trace_id", "ctx-42").Logger()

	l := FromContext(scoped.WithContext(context.Background()))
	require.NotNil(t, l)
	l.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-42", entry["trace_id"])
}

func TestFromContext_BareContextStillUsable(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Debug().Msg("no scoped logger attached") })
}

func TestFromRequest_ReturnsRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := zerolog.New(&buf).With().Str("trace_id", "req-7").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req = req.WithContext(scoped.WithContext(req.Context()))

	FromRequest(req).Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry["trace_id"])
}

func TestNewClientLogger_WritesBesideExecutable(t *testing.T) {
	execPath, err := os.Executable()
	require.NoError(t, err)
	logPath := filepath.Join(filepath.Dir(execPath), clientLogFile)
	t.Cleanup(func() { _ = os.Remove(logPath) })

	l := NewClientLogger("pin-vault-client")
	l.Info().Msg("client log sink check")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err, "client logger should create %s", clientLogFile)
	assert.True(t, strings.Contains(string(data), "pin-vault-client"))
	assert.True(t, strings.Contains(string(data), "client log sink check"))
}
