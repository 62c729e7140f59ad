package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newCaptureLogger() (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return &logger, &buf
}

func TestSlowQueryTracerWarnsOverThreshold(t *testing.T) {
	logger, buf := newCaptureLogger()
	tracer := &slowQueryTracer{threshold: time.Millisecond, log: logger}

	ctx := tracer.TraceQueryStart(context.Background(), nil,
		pgx.TraceQueryStartData{SQL: "SELECT pg_sleep(1)"})
	time.Sleep(5 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), "SELECT pg_sleep(1)")
}

func TestSlowQueryTracerIgnoresFastQueries(t *testing.T) {
	logger, buf := newCaptureLogger()
	tracer := &slowQueryTracer{threshold: time.Minute, log: logger}

	ctx := tracer.TraceQueryStart(context.Background(), nil,
		pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}

func TestSlowQueryTracerToleratesForeignContext(t *testing.T) {
	logger, buf := newCaptureLogger()
	tracer := &slowQueryTracer{threshold: time.Millisecond, log: logger}

	// An end call whose context never went through TraceQueryStart
	// must not log or panic.
	tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}
