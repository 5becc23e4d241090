package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewResourceCarriesServiceName(t *testing.T) {
	res, err := newResource("contest-api-test")
	require.NoError(t, err)

	value, ok := res.Set().Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, "contest-api-test", value.AsString())
}

func TestSetupStdout(t *testing.T) {
	shutdown, err := SetupOTelSDK(context.Background(), "contest-api-test", false)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
