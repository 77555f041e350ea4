package weather

import (
	"bufio"
	"encoding/json"
	"io"
	"sync/atomic"
	"testing"

	"go.uber.org/mock/gomock"
	"weathersense.xyz/weather-metrics-service/pkg/db"
	"weathersense.xyz/weather-metrics-service/pkg/weather/mocks"
)

func GetMockWeatherWithMemorySqliteDialector(t *testing.T, useMockIIngest, useMockIQuery bool) (
	*gomock.Controller,
	*Weather,
	*mocks.MockIIngest,
	*mocks.MockIQuery,
) {
	ctrl := gomock.NewController(t)

	mockIIngest := mocks.NewMockIIngest(ctrl)
	mockIQuery := mocks.NewMockIQuery(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	weatherInstance := (&Weather{Db: *dbInstance})

	ingestService := weatherInstance.GetIIngest()
	if useMockIIngest {
		ingestService = mockIIngest
	}

	queryService := weatherInstance.GetIQuery()
	if useMockIQuery {
		queryService = mockIQuery
	}

	weatherInstance.WithServices(ServiceOpts{
		Ingest: ingestService,
		Query:  queryService,
	})

	return ctrl, weatherInstance, mockIIngest, mockIQuery
}

// the shared in-memory sqlite is one database for the whole test binary, so
// every test takes fresh sensor IDs from here to stay isolated
var sensorIDCounter atomic.Int64

func NewTestSensorID() int {
	return 1000 + int(sensorIDCounter.Add(1))
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
