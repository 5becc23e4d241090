package taskrunner

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/taskrunner"

var tracer = otel.Tracer(name)

var ErrShutdownTimeout = errors.New("background tasks did not finish before shutdown deadline")

// Tracks fire and forget work started by request handlers so shutdown can drain it
type Client struct {
	running sync.WaitGroup
}

func Create() *Client {
	return &Client{}
}

// Runs `task` on its own goroutine. The task context keeps the caller's values and trace but
// is not cancelled with the request.
func (c *Client) Run(ctx context.Context, taskName string, task func(context.Context)) {
	c.running.Add(1)
	go func() {
		defer c.running.Done()

		//nolint:govet // shadow: intentionally shadow ctx to avoid using the incorrect one.
		ctx, span := tracer.Start(
			context.WithoutCancel(ctx),
			"Run",
			trace.WithAttributes(attribute.String("task", taskName)),
		)
		defer span.End()

		task(ctx)

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "ran task")
	}()
}

// Waits for every running task or until `ctx` is done, whichever comes first
func (c *Client) Shutdown(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Shutdown")
	defer span.End()

	done := make(chan struct{})
	go func() {
		c.running.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		span.AddEvent("hit_timeout")
		span.RecordError(ErrShutdownTimeout)
		span.SetStatus(codes.Error, "tasks still running at deadline")
		return ErrShutdownTimeout
	case <-done:
		span.AddEvent("done")
		span.RecordError(nil)
		span.SetStatus(codes.Ok, "finished shutting down")
		return nil
	}
}
