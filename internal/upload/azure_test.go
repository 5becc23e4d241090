package upload_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/azure/azurite"

	"github.com/aquaria-id/contest-api/internal/upload"
)

const container = "score-sheets"

func TestAzure(t *testing.T) {
	ctx := context.Background()

	azuriteContainer, err := azurite.Run(
		ctx,
		"mcr.microsoft.com/azure-storage/azurite:latest",
		azurite.WithInMemoryPersistence(256),
	)
	require.NoError(t, err, "failed to make azurite container")
	defer func() {
		require.NoError(t, testcontainers.TerminateContainer(azuriteContainer))
	}()

	cred, err := azblob.NewSharedKeyCredential(azurite.AccountName, azurite.AccountKey)
	require.NoError(t, err, "failed to get creds")

	serviceURL, err := azuriteContainer.BlobServiceURL(ctx)
	require.NoError(t, err, "failed to get serviceURL")
	serviceURL = fmt.Sprintf("%s/%s", serviceURL, azurite.AccountName)

	azclient, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	require.NoError(t, err, "failed to make azure blob client")

	_, err = azclient.CreateContainer(ctx, container, nil)
	require.NoError(t, err, "failed to make container")

	uploader, err := upload.NewAzureUploader(
		azurite.AccountName,
		azurite.AccountKey,
		serviceURL,
		container,
	)
	require.NoError(t, err, "failed to construct uploader")

	t.Run("NotExists", func(t *testing.T) {
		exists, err := uploader.Exists(ctx, "missing.json")
		require.NoError(t, err, "failed to check if blob exists")
		assert.False(t, exists, "blob should not exist")
	})

	t.Run("Exists", func(t *testing.T) {
		name := uuid.NewString()
		_, err := azclient.UploadBuffer(ctx, container, name, []byte(`{"a":1}`), nil)
		require.NoError(t, err, "failed to seed blob")

		exists, err := uploader.Exists(ctx, name)
		require.NoError(t, err, "failed to check if blob exists")
		assert.True(t, exists, "blob should exist")
	})

	t.Run("UploadSetsContentType", func(t *testing.T) {
		name := uuid.NewString() + ".json"
		expected := `{"kesehatan":8.5}`
		err := uploader.Upload(
			ctx,
			strings.NewReader(expected),
			int64(len(expected)),
			name,
			"application/json",
		)
		require.NoError(t, err, "failed to upload blob")

		buffer := make([]byte, len(expected))
		_, err = azclient.DownloadBuffer(ctx, container, name, buffer, nil)
		require.NoError(t, err, "failed to download blob")
		assert.Equal(t, expected, string(buffer), "content of blob should match")

		props, err := azclient.ServiceClient().
			NewContainerClient(container).
			NewBlobClient(name).
			GetProperties(ctx, nil)
		require.NoError(t, err, "failed to get blob properties")
		require.NotNil(t, props.ContentType)
		assert.Equal(t, "application/json", *props.ContentType)
	})

	t.Run("HashedIsContentAddressed", func(t *testing.T) {
		layout := upload.Layout{Prefix: "sheets", Extension: ".json", ContentType: "application/json"}
		body := `{"warna":7}`

		first, err := upload.Hashed(ctx, uploader, strings.NewReader(body), int64(len(body)), layout)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(first, "sheets/"), "object should live under prefix")
		assert.True(t, strings.HasSuffix(first, ".json"), "object should carry extension")

		second, err := upload.Hashed(ctx, uploader, strings.NewReader(body), int64(len(body)), layout)
		require.NoError(t, err)
		assert.Equal(t, first, second, "same content should map to the same object")
	})

	t.Run("StoreIdentifier", func(t *testing.T) {
		ident, err := uploader.StoreIdentifier(ctx)
		require.NoError(t, err)
		assert.Equal(t, "azure://"+container, ident)
	})
}
