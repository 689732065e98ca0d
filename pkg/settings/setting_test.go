package settings

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetProvider(t *testing.T) {
	old := provider
	t.Cleanup(func() {
		provider = old
	})
	provider = nil
}

func TestGetEnvKey(t *testing.T) {
	assert.Equal(t, "IDP_LOG_LEVEL", GetEnvKey("log-level"))
	assert.Equal(t, "IDP_CATALOG", GetEnvKey("catalog"))
}

func TestDefaults(t *testing.T) {
	resetProvider(t)
	assert.Equal(t, "info", LogLevel.Get())
	assert.Equal(t, "yaml", OutputFormat.Get())
	assert.False(t, StrictSDK.GetBool())
	assert.Equal(t, "cognitoidp", Service.Get())
}

func TestReadOnly(t *testing.T) {
	resetProvider(t)
	assert.EqualError(t, Service.Set("other"), "setting service is read-only")
}

func TestEnvProvider(t *testing.T) {
	resetProvider(t)
	t.Setenv("IDP_OUTPUT_FORMAT", "json")
	t.Setenv("IDP_STRICT_SDK", "true")

	require.NoError(t, SetProvider(NewEnvProvider()))
	assert.Equal(t, "json", OutputFormat.Get())
	assert.True(t, StrictSDK.GetBool())
	assert.Equal(t, "info", LogLevel.Get())

	require.NoError(t, OutputFormat.Set("yaml"))
	assert.Equal(t, "yaml", OutputFormat.Get())

	assert.EqualError(t, NewEnvProvider().Set("nope", "x"), "unknown setting nope")
}

func TestEnvProviderRejectsEmpty(t *testing.T) {
	resetProvider(t)
	t.Setenv("IDP_LOG_LEVEL", "")

	err := SetProvider(NewEnvProvider())
	assert.EqualError(t, err, "IDP_LOG_LEVEL is set but empty")
	assert.Nil(t, provider)
}

func TestApplyLogLevel(t *testing.T) {
	resetProvider(t)
	level := logrus.GetLevel()
	defer logrus.SetLevel(level)

	t.Setenv("IDP_LOG_LEVEL", "debug")
	require.NoError(t, SetProvider(NewEnvProvider()))
	require.NoError(t, ApplyLogLevel())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	t.Setenv("IDP_LOG_LEVEL", "loud")
	assert.Error(t, ApplyLogLevel())
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}
