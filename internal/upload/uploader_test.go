package upload_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aquaria-id/contest-api/internal/config"
	"github.com/aquaria-id/contest-api/internal/upload"
	mockuploader "github.com/aquaria-id/contest-api/internal/upload/mock"
)

// sha256 of `{"a":1}`
const sheetSum = "015abd7f5cc57a2dd94b7590f04ad8084273905ee33ec5cebeae62276a97f862"

func TestHashed(t *testing.T) {
	layout := upload.Layout{Prefix: "score-sheets", Extension: ".json", ContentType: "application/json"}
	expectedName := "score-sheets/" + sheetSum + ".json"

	t.Run("UploadsWhenMissing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u := mockuploader.NewMockUploader(ctrl)
		body := `{"a":1}`

		gomock.InOrder(
			u.EXPECT().Exists(gomock.Any(), expectedName).Return(false, nil),
			u.EXPECT().
				Upload(gomock.Any(), gomock.Any(), int64(len(body)), expectedName, "application/json").
				Return(nil),
		)

		name, err := upload.Hashed(context.Background(), u, strings.NewReader(body), int64(len(body)), layout)
		require.NoError(t, err)
		assert.Equal(t, expectedName, name)
	})

	t.Run("SkipsExisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u := mockuploader.NewMockUploader(ctrl)
		body := `{"a":1}`

		u.EXPECT().Exists(gomock.Any(), expectedName).Return(true, nil)

		name, err := upload.Hashed(context.Background(), u, strings.NewReader(body), int64(len(body)), layout)
		require.NoError(t, err)
		assert.Equal(t, expectedName, name)
	})

	t.Run("ExistsError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u := mockuploader.NewMockUploader(ctrl)
		body := `{"a":1}`

		u.EXPECT().Exists(gomock.Any(), expectedName).Return(false, errors.New("expected error"))

		_, err := upload.Hashed(context.Background(), u, strings.NewReader(body), int64(len(body)), layout)
		require.Error(t, err)
	})
}

func TestFromConfig(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		u, err := upload.FromConfig(&config.ArchiveConfig{Backend: config.ArchiveBackendNone})
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("S3", func(t *testing.T) {
		u, err := upload.FromConfig(&config.ArchiveConfig{
			Backend: config.ArchiveBackendS3,
			S3: &config.S3ArchiveConfig{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "minio",
				SecretAccessKey: "minio123",
				BucketName:      "sheets",
			},
		})
		require.NoError(t, err)
		assert.IsType(t, &upload.RetryUploader{}, u)
	})

	t.Run("S3MissingSettings", func(t *testing.T) {
		_, err := upload.FromConfig(&config.ArchiveConfig{Backend: config.ArchiveBackendS3})
		require.Error(t, err)
	})

	t.Run("AzureMissingSettings", func(t *testing.T) {
		_, err := upload.FromConfig(&config.ArchiveConfig{Backend: config.ArchiveBackendAzure})
		require.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := upload.FromConfig(&config.ArchiveConfig{Backend: "ftp"})
		require.Error(t, err)
	})
}
