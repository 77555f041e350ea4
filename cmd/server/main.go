package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"weathersense.xyz/weather-metrics-service/pkg/common"
	"weathersense.xyz/weather-metrics-service/pkg/db"
	weatherHttp "weathersense.xyz/weather-metrics-service/pkg/http"
	"weathersense.xyz/weather-metrics-service/pkg/weather"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	weatherDbType := os.Getenv(common.EnvKeyWeatherDBType)
	switch weatherDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		secret, err := db.ResolveSecret(db.EnvSecretSource{})
		if err != nil {
			log.Fatal("Failed to resolve database connection secret: ", err)
		}
		dbInstance = db.GetInstance(db.UsePostgresDialector(secret))
	default:
		log.Fatal("Unknown WEATHER_DB_TYPE: " + weatherDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyWeatherHTTPHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyWeatherDefaultRate), 64); err != nil {
		log.Fatal("Invalid WEATHER_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyWeatherDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid WEATHER_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	core := weather.Weather{
		Db: *dbInstance,
	}
	core.WithServices(weather.ServiceOpts{
		Ingest: core.GetIIngest(),
		Query:  core.GetIQuery(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &weatherHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: weatherHttp.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
