package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestNewLogger_Stdout(t *testing.T) {
	assert.NotNil(t, NewLogger("server"))
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server")

	parent.WithTraceID("trace-1").Info().Msg("child")
	assert.Equal(t, "trace-1", lastEntry(t, &buf)["trace_id"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "trace_id")
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context { return c.Str("extra", "x") })

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "extra")

	child.Info().Msg("child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "x", entry["extra"])
	assert.Equal(t, "server", entry["role"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx").WithTraceID("abc")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])

	req := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "from request", lastEntry(t, &buf)["message"])
}

func TestFromContext_Empty(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
