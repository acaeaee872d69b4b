package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("recrypt", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "reencrypt", "INTERNAL")
	span.WithAttributes(map[string]string{"job.id": "job-1"})
	_, child := StartSpan(ctx, "upload", "CLIENT")
	EndSpan(child, errors.New("upload failed"))
	EndSpan(span, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reencrypt")
	assert.Contains(t, string(data), "job-1")

	require.NoError(t, Init("recrypt", "0.0.1", filepath.Join(t.TempDir(), "ignored.txt")))
	require.NotNil(t, output)
	assert.Equal(t, fname, output.Name())

	assert.NoError(t, Shutdown(context.Background()))
	assert.Nil(t, output)
}

func TestSpan_Nil(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(nil)
	EndSpan(span, nil)
}
