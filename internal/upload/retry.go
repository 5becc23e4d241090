package upload

import (
	"context"
	"io"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Uploader = (*RetryUploader)(nil)

// Wraps every operation of another uploader in a backoff loop
type RetryUploader struct {
	uploader Uploader
	backoff  func() retry.Backoff
}

func NewRetryUploaderBackoff(uploader Uploader, backoff func() retry.Backoff) *RetryUploader {
	return &RetryUploader{
		uploader: uploader,
		backoff:  backoff,
	}
}

// Archiving happens after the response is sent so a long backoff is fine
func NewRetryUploader(uploader Uploader) *RetryUploader {
	return NewRetryUploaderBackoff(uploader, func() retry.Backoff {
		b := retry.NewExponential(time.Second)
		b = retry.WithCappedDuration(30*time.Second, b)
		b = retry.WithMaxDuration(2*time.Minute, b)
		return b
	})
}

// runs fn until it succeeds or the backoff gives up, one child span per attempt
func (r *RetryUploader) do(ctx context.Context, op string, fn func(context.Context) error) error {
	attempt := 0
	return retry.Do(ctx, r.backoff(), func(rctx context.Context) error {
		attempt++
		rctx, span := tracer.Start(rctx, op+".Attempt", trace.WithAttributes(
			attribute.Int("attempt", attempt),
		))
		defer span.End()

		if err := fn(rctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "attempt failed")
			return retry.RetryableError(err)
		}

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "attempt succeeded")
		return nil
	})
}

func (r *RetryUploader) Exists(ctx context.Context, name string) (bool, error) {
	ctx, span := tracer.Start(ctx, "RetryUploader.Exists")
	defer span.End()

	var exists bool
	err := r.do(ctx, "RetryUploader.Exists", func(ctx context.Context) error {
		var err error
		exists, err = r.uploader.Exists(ctx, name)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to check existence")
		return false, err
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "checked existence")
	return exists, nil
}

func (r *RetryUploader) StoreIdentifier(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "RetryUploader.StoreIdentifier")
	defer span.End()

	var ident string
	err := r.do(ctx, "RetryUploader.StoreIdentifier", func(ctx context.Context) error {
		var err error
		ident, err = r.uploader.StoreIdentifier(ctx)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get store identifier")
		return "", err
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "got store identifier")
	return ident, nil
}

func (r *RetryUploader) Upload(
	ctx context.Context,
	reader io.ReadSeeker,
	length int64,
	name string,
	contentType string,
) error {
	ctx, span := tracer.Start(ctx, "RetryUploader.Upload")
	defer span.End()

	err := r.do(ctx, "RetryUploader.Upload", func(ctx context.Context) error {
		// a failed attempt may have consumed part of the reader
		if _, err := reader.Seek(0, io.SeekStart); err != nil {
			return err
		}

		return r.uploader.Upload(ctx, reader, length, name, contentType)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to upload")
		return err
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "uploaded")
	return nil
}
