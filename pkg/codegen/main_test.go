package main

import (
	"testing"

	"github.com/rancher/idp-client/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagOrSetting(t *testing.T) {
	t.Setenv("IDP_CATALOG", "testdata/custom.yaml")
	require.NoError(t, settings.SetProvider(settings.NewEnvProvider()))

	assert.Equal(t, "testdata/custom.yaml", flagOrSetting("", settings.Catalog))
	assert.Equal(t, "other.yaml", flagOrSetting("other.yaml", settings.Catalog))
	assert.Equal(t, settings.GeneratedPath.Default, flagOrSetting("", settings.GeneratedPath))
}
