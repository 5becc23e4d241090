package archive

import (
	"bytes"
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aquaria-id/contest-api/internal/audit"
	"github.com/aquaria-id/contest-api/internal/types"
	"github.com/aquaria-id/contest-api/internal/upload"
)

var tracer = otel.Tracer("github.com/aquaria-id/contest-api/internal/archive")

var ErrEmptyBuffer = errors.New("refusing to archive an empty buffer")

// What is being archived and which row it belongs to
type Metadata struct {
	ArchivedFile types.ArchivedFile
	Entity       audit.FileArchivedEntity
	EntityID     string
}

var layouts = map[types.ArchivedFile]upload.Layout{
	types.FileScoreSheet: {
		Prefix:      "score-sheets",
		Extension:   ".json",
		ContentType: "application/json",
	},
}

// Stores `buffer` content addressed and emits a file archived audit event naming the stored object
//
//revive:disable-next-line:exported
func ArchiveBuffer(
	ctx context.Context,
	auditContext audit.Context,
	u upload.Uploader,
	buffer []byte,
	metadata Metadata,
) (string, error) {
	ctx, span := tracer.Start(ctx, "ArchiveBuffer", trace.WithAttributes(
		attribute.String("file", string(metadata.ArchivedFile)),
		attribute.String("entity", string(metadata.Entity)),
		attribute.String("entity.id", metadata.EntityID),
		attribute.Int("size", len(buffer)),
	))
	defer span.End()

	if len(buffer) == 0 {
		span.RecordError(ErrEmptyBuffer)
		span.SetStatus(codes.Error, "empty buffer")
		return "", ErrEmptyBuffer
	}

	layout, ok := layouts[metadata.ArchivedFile]
	if !ok {
		layout = upload.Layout{Prefix: string(metadata.ArchivedFile)}
	}

	objectName, err := upload.Hashed(ctx, u, bytes.NewReader(buffer), int64(len(buffer)), layout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to upload buffer")
		return "", err
	}

	identifier, err := u.StoreIdentifier(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get store identifier")
		return "", err
	}

	span.AddEvent("logging archived file")
	audit.LogFileArchived(
		auditContext,
		identifier,
		objectName,
		metadata.ArchivedFile,
		metadata.Entity,
		metadata.EntityID,
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "archived buffer")
	return objectName, nil
}
