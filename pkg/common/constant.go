package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyWeatherDBType string = "WEATHER_DB_TYPE"
	EnvKeyWeatherDBPath string = "WEATHER_DB_PATH"

	EnvKeyWeatherDBHost     string = "WEATHER_DB_HOST"
	EnvKeyWeatherDBPort     string = "WEATHER_DB_PORT"
	EnvKeyWeatherDBUser     string = "WEATHER_DB_USER"
	EnvKeyWeatherDBPassword string = "WEATHER_DB_PASSWORD"
	EnvKeyWeatherDBName     string = "WEATHER_DB_NAME"

	EnvKeyWeatherHTTPHostPort string = "WEATHER_HTTP_HOST_PORT"

	EnvKeyWeatherDefaultRate  string = "WEATHER_DEFAULT_RATE"
	EnvKeyWeatherDefaultBurst string = "WEATHER_DEFAULT_BURST"

	LoggerNameWeatherCore    string = "weather_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerFieldCategory      string = "category"
	LoggerCategoryIngest     string = "ingest"
	LoggerCategoryQuery      string = "query"
	LoggerCategoryCredential string = "credential"
)
