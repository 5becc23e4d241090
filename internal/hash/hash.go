package hash

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/aquaria-id/contest-api/internal/hash")

// Hex sha256 of everything left in the reader. Will consume reader to the end.
func Reader(ctx context.Context, f io.Reader) (string, error) {
	_, span := tracer.Start(ctx, "Reader")
	defer span.End()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy reader into hasher")
		return "", err
	}

	sum := hex.EncodeToString(h.Sum(nil))

	span.AddEvent("digested", trace.WithAttributes(
		attribute.String("sum", sum),
		attribute.Int64("bytes", n),
	))

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "hashed reader")
	return sum, nil
}
