package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterLevelAndContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, "warn", "json", false)

	base.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	ctx := WithTool(WithRequestID(context.Background(), "req-1"), "create_resume")
	With(ctx, base).Warn().Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "create_resume", line["tool"])
}

func TestNewWithWriterFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "chatty", "json", false).Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "***", Redact("ur_1234"))
	assert.Equal(t, "ur_l...yz", Redact("ur_live_abcxyz"))
}
