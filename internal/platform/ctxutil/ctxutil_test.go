// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
)

/*
TestRequestID round-trips the correlation ID.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0190a8f2-7b3c-7d4e-8f00-000000000001")
	assert.Equal(t, "0190a8f2-7b3c-7d4e-8f00-000000000001", ctxutil.GetRequestID(ctx))
}

/*
TestLogger falls back to the default logger outside a request.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Same(t, logger, ctxutil.GetLogger(ctxutil.WithLogger(ctx, logger)))

	// A typed nil is ignored
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctxutil.WithLogger(ctx, nil)))
}

/*
TestKeys_DoNotCollide keeps string keys from shadowing ours.
*/
func TestKeys_DoNotCollide(t *testing.T) {
	ctx := context.WithValue(context.Background(), "request_id", "spoofed")

	assert.Empty(t, ctxutil.GetRequestID(ctx))
}
