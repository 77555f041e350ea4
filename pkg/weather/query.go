package weather

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"weathersense.xyz/weather-metrics-service/pkg/common"
	"weathersense.xyz/weather-metrics-service/pkg/models"
)

const statisticLatest = "latest"

func (w *Weather) runQuery(params models.QueryParams) (*models.QueryResult, error) {
	request, err := Resolve(params)
	if err != nil {
		return nil, err
	}

	switch r := request.(type) {
	case *LatestRequest:
		return w.runLatest(r)
	case *AggregateRequest:
		return w.runAggregate(r)
	default:
		panic(fmt.Sprintf("unreachable: unknown request type %T", request))
	}
}

// runLatest fetches the max-timestamp row for every (sensor, metric) pair.
// Pairs with no rows contribute nothing. Each sensor's ingested_at is the
// freshest timestamp among that sensor's returned metrics.
func (w *Weather) runLatest(r *LatestRequest) (*models.QueryResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	sensorIDs := r.Sensors.IDs
	if r.Sensors.All {
		if err := w.Db.Conn.Model(&models.Reading{}).
			Distinct().
			Pluck("sensor_id", &sensorIDs).Error; err != nil {
			logger.Error("Failed to enumerate sensors", zap.Error(err))
			return nil, &StorageError{Op: "enumerate sensors", Err: err}
		}
	}

	logger.Info("Running latest-mode query",
		zap.Int("sensors", len(sensorIDs)),
		zap.Strings("metrics", r.Metrics))

	results := make(map[string]models.SensorRecord)
	for _, sensorID := range sensorIDs {
		var rows []models.Reading
		for _, metric := range r.Metrics {
			var reading models.Reading
			err := w.Db.Conn.
				Where("sensor_id = ? AND metric_type = ?", sensorID, metric).
				Order("timestamp desc").
				First(&reading).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				logger.Error("Failed to fetch latest reading", zap.Error(err))
				return nil, &StorageError{Op: "latest reading lookup", Err: err}
			}
			rows = append(rows, reading)
		}

		if len(rows) == 0 {
			continue
		}

		record := models.SensorRecord{}
		for _, row := range rows {
			record[string(row.MetricType)] = row.Value
		}

		freshest := common.Reducer(rows, func(acc time.Time, row models.Reading) time.Time {
			if row.Timestamp.After(acc) {
				return row.Timestamp
			}
			return acc
		}, time.Time{})
		record["ingested_at"] = freshest.Format(time.RFC3339)

		results[strconv.Itoa(sensorID)] = record
	}

	return &models.QueryResult{Statistic: statisticLatest, Results: results}, nil
}

type aggregateRow struct {
	SensorID   int
	MetricType string
	Value      float64
}

// runAggregate executes one grouped aggregation over the half-open range.
func (w *Weather) runAggregate(r *AggregateRequest) (*models.QueryResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	logger.Info("Running aggregate-mode query",
		zap.String("statistic", string(r.Statistic)),
		zap.Strings("metrics", r.Metrics),
		zap.Time("start", r.Range.Start),
		zap.Time("end", r.Range.End))

	query := w.Db.Conn.Model(&models.Reading{}).
		Select("sensor_id, metric_type, " + r.Statistic.sqlExpr() + " AS value").
		Where("metric_type IN ?", r.Metrics).
		Where("timestamp >= ? AND timestamp < ?", r.Range.Start, r.Range.End).
		Group("sensor_id").
		Group("metric_type")

	if !r.Sensors.All {
		query = query.Where("sensor_id IN ?", r.Sensors.IDs)
	}

	var rows []aggregateRow
	if err := query.Scan(&rows).Error; err != nil {
		logger.Error("Failed to run aggregate query", zap.Error(err))
		return nil, &StorageError{Op: "aggregate query", Err: err}
	}

	results := make(map[string]models.SensorRecord)
	for _, row := range rows {
		key := strconv.Itoa(row.SensorID)
		record, ok := results[key]
		if !ok {
			record = models.SensorRecord{}
			results[key] = record
		}
		record[row.MetricType] = row.Value
	}

	return &models.QueryResult{Statistic: string(r.Statistic), Results: results}, nil
}

type IQueryImpl struct {
	weather *Weather
}

func (iq *IQueryImpl) Run(params models.QueryParams) (*models.QueryResult, error) {
	return iq.weather.runQuery(params)
}

func (w *Weather) GetIQuery() IQuery {
	return &IQueryImpl{weather: w}
}
