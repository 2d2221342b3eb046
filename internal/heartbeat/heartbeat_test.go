package heartbeat

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeat_Emits(t *testing.T) {
	var buf bytes.Buffer
	h := New(5*time.Millisecond, &buf)

	h.Start()
	time.Sleep(50 * time.Millisecond)
	h.Stop()

	// Safe to inspect the buffer only after Stop returns
	out := buf.String()
	require.NotEmpty(t, out)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Contains(t, line, "covdelta: still running (")
	}
}

func TestHeartbeat_StopHaltsEmission(t *testing.T) {
	var buf bytes.Buffer
	h := New(5*time.Millisecond, &buf)

	h.Start()
	time.Sleep(20 * time.Millisecond)
	h.Stop()

	size := buf.Len()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, size, buf.Len())
}

func TestHeartbeat_StopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	h := New(time.Minute, &buf)

	h.Start()
	h.Stop()
	h.Stop()
}

func TestHeartbeat_NoOutputBeforeFirstTick(t *testing.T) {
	var buf bytes.Buffer
	h := New(time.Hour, &buf)

	h.Start()
	h.Stop()

	assert.Empty(t, buf.String())
}
