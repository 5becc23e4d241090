package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aquaria-id/contest-api/internal/config"
	"github.com/aquaria-id/contest-api/internal/hash"
)

var tracer = otel.Tracer(
	"github.com/aquaria-id/contest-api/internal/upload",
)

//go:generate mockgen -destination ./mock/mock.go -package mock . Uploader

// Generic object storage interface
type Uploader interface {
	// Create / Overwrite object contents by `name`
	Upload(ctx context.Context, reader io.ReadSeeker, length int64, name string, contentType string) error
	// Check if an object exists (focused on preventing uploading the same content multiple times not authoritative existence)
	//
	// May always return false
	Exists(ctx context.Context, name string) (bool, error)
	// Provide an identifier for where objects are being uploaded to. Useful for logging and auditing purposes.
	StoreIdentifier(ctx context.Context) (string, error)
}

// Where and how content addressed objects are stored
type Layout struct {
	Prefix      string
	Extension   string
	ContentType string
}

func (l Layout) objectName(sum string) string {
	return path.Join(l.Prefix, sum+l.Extension)
}

// Uploads a buffer where the object name is derived from the hash of the contents of `reader` (CAS)
//
// Will:
// 1. seek to 0 so only pass in a buffer you want completely uploaded
// 2. not upload if an object with the same hash already exists
func Hashed(
	ctx context.Context,
	u Uploader,
	reader io.ReadSeeker,
	length int64,
	layout Layout,
) (string, error) {
	ctx, span := tracer.Start(ctx, "UploadHashed", trace.WithAttributes(
		attribute.String("layout.prefix", layout.Prefix),
		attribute.Int64("length", length),
	))
	defer span.End()

	_, err := reader.Seek(0, io.SeekStart)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to seek to start")
		return "", err
	}

	sum, err := hash.Reader(ctx, reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to hash reader")
		return "", err
	}

	name := layout.objectName(sum)
	span.SetAttributes(attribute.String("object.name", name))

	exists, err := u.Exists(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to check if object exists")
		return "", err
	}

	if exists {
		span.RecordError(nil)
		span.SetStatus(codes.Ok, "found existing object")
		return name, nil
	}

	_, err = reader.Seek(0, io.SeekStart)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to seek to start")
		return "", err
	}

	err = u.Upload(ctx, reader, length, name, layout.ContentType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to upload object")
		return "", err
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "uploaded object by hash")
	return name, nil
}

// Builds the retrying uploader for the configured archive backend. Returns nil when archiving is disabled.
func FromConfig(cfg *config.ArchiveConfig) (Uploader, error) {
	switch cfg.Backend {
	case config.ArchiveBackendNone, "":
		return nil, nil
	case config.ArchiveBackendS3:
		if cfg.S3 == nil {
			return nil, errors.New("s3 archive backend requires s3 settings")
		}

		minioUploader, err := NewMinioUploader(
			cfg.S3.Endpoint,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.SSLEnabled,
			cfg.S3.BucketName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 uploader: %w", err)
		}

		return NewRetryUploader(minioUploader), nil
	case config.ArchiveBackendAzure:
		if cfg.Azure == nil {
			return nil, errors.New("azure archive backend requires azure settings")
		}

		azureUploader, err := NewAzureUploader(
			cfg.Azure.AccountName,
			cfg.Azure.AccountKey,
			cfg.Azure.ServiceURL,
			cfg.Azure.Container,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create azure uploader: %w", err)
		}

		return NewRetryUploader(azureUploader), nil
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Backend)
	}
}
