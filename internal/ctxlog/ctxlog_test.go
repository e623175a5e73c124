package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_Stored(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("hello", "k", 1)
	require.Contains(t, buf.String(), "msg=hello k=1")
}

func TestFromContext_Fallback(t *testing.T) {
	require.Same(t, slog.Default(), FromContext(context.Background()))
	require.Same(t, slog.Default(), FromContext(WithLogger(context.Background(), nil)))
}
