package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathersense.xyz/weather-metrics-service/pkg/common"
	constant "weathersense.xyz/weather-metrics-service/pkg/common"
	_ "weathersense.xyz/weather-metrics-service/pkg/testing"
)

func TestEnvSecretSource_MissingHost(t *testing.T) {
	common.SetTestLoggerNop()

	t.Setenv(constant.EnvKeyWeatherDBHost, "")

	_, err := EnvSecretSource{}.Fetch()
	require.Error(t, err)
}

func TestEnvSecretSource_Fetch(t *testing.T) {
	common.SetTestLoggerNop()

	t.Setenv(constant.EnvKeyWeatherDBHost, "db.internal")
	t.Setenv(constant.EnvKeyWeatherDBPort, "5433")
	t.Setenv(constant.EnvKeyWeatherDBUser, "weathersensor")
	t.Setenv(constant.EnvKeyWeatherDBPassword, "secret")
	t.Setenv(constant.EnvKeyWeatherDBName, "weathersensor")

	secret, err := EnvSecretSource{}.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", secret.Host)
	assert.Equal(t, 5433, secret.Port)
	assert.Equal(t, "weathersensor", secret.Username)
}

func TestEnvSecretSource_InvalidPort(t *testing.T) {
	common.SetTestLoggerNop()

	t.Setenv(constant.EnvKeyWeatherDBHost, "db.internal")
	t.Setenv(constant.EnvKeyWeatherDBPort, "not-a-port")

	_, err := EnvSecretSource{}.Fetch()
	require.Error(t, err)
}

func TestResolveSecret_FetchOnce(t *testing.T) {
	common.SetTestLoggerNop()

	t.Setenv(constant.EnvKeyWeatherDBHost, "db.internal")
	t.Setenv(constant.EnvKeyWeatherDBPort, "5432")

	first, err := ResolveSecret(EnvSecretSource{})
	require.NoError(t, err)

	// later fetches see the cached descriptor even if the source changes
	t.Setenv(constant.EnvKeyWeatherDBHost, "other-host")
	second, err := ResolveSecret(EnvSecretSource{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "db.internal", second.Host)
}

func TestUsePostgresDialector(t *testing.T) {
	common.SetTestLoggerNop()

	dialector := UsePostgresDialector(&ConnectionSecret{
		Host:     "db.internal",
		Port:     5432,
		Username: "weathersensor",
		Password: "secret",
		DBName:   "weathersensor",
	})
	assert.Equal(t, "postgres", dialector.Name())
}
