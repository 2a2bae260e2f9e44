package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerCarriesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithActorRole(ctx, "driver")
	ctx = logg.WithOrderID(ctx, "ORD-1001")
	logg.Info(ctx, "order picked up")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "driver", entry["actor_role"])
	assert.Equal(t, "ORD-1001", entry["order_id"])
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "order picked up", entry["message"])
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, "info", ParseLevel("").String())
	assert.Equal(t, "info", ParseLevel("nonsense").String())
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
}
