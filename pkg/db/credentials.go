package db

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weathersense.xyz/weather-metrics-service/pkg/common"
)

// ConnectionSecret is the descriptor returned by a secret source. It is
// fetched once per process and reused for every connection attempt.
type ConnectionSecret struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
}

type SecretSource interface {
	Fetch() (*ConnectionSecret, error)
}

// EnvSecretSource reads the connection descriptor from WEATHER_DB_* env
// vars, typically injected by the deployment environment.
type EnvSecretSource struct{}

func (EnvSecretSource) Fetch() (*ConnectionSecret, error) {
	host := os.Getenv(common.EnvKeyWeatherDBHost)
	if host == "" {
		return nil, fmt.Errorf("%s not set", common.EnvKeyWeatherDBHost)
	}

	port := 5432
	if p := os.Getenv(common.EnvKeyWeatherDBPort); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyWeatherDBPort, err)
		}
		port = parsed
	}

	return &ConnectionSecret{
		Host:     host,
		Port:     port,
		Username: os.Getenv(common.EnvKeyWeatherDBUser),
		Password: os.Getenv(common.EnvKeyWeatherDBPassword),
		DBName:   os.Getenv(common.EnvKeyWeatherDBName),
	}, nil
}

var (
	secretOnce   sync.Once
	cachedSecret *ConnectionSecret
	secretErr    error
)

// ResolveSecret fetches the connection secret through src exactly once and
// caches the result process-wide. Concurrent first callers all observe the
// same outcome.
func ResolveSecret(src SecretSource) (*ConnectionSecret, error) {
	secretOnce.Do(func() {
		logger := common.GetLoggerWith(
			common.LoggerNameWeatherCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryCredential),
		)
		cachedSecret, secretErr = src.Fetch()
		if secretErr != nil {
			logger.Error("Failed to fetch connection secret", zap.Error(secretErr))
			return
		}
		logger.Info("Connection secret fetched and cached",
			zap.String("host", cachedSecret.Host),
			zap.String("dbname", cachedSecret.DBName))
	})
	return cachedSecret, secretErr
}

func UsePostgresDialector(secret *ConnectionSecret) gorm.Dialector {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=require",
		secret.Host, secret.Port, secret.Username, secret.Password, secret.DBName)
	return postgres.Open(dsn)
}
