// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/platform/ctxutil"
	"github.com/taibuivan/citeline/internal/platform/sec"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, ctxutil.GetLogger(ctx), "missing logger must fall back to slog.Default")

	custom := slog.Default().With(slog.String("scope", "test"))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetPrincipal(ctx))

	principal := &sec.Principal{UserID: "u1", Groups: []sec.Group{sec.GroupUsers}}
	ctx = ctxutil.WithPrincipal(ctx, principal)
	assert.Same(t, principal, ctxutil.GetPrincipal(ctx))
}
