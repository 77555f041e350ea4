package weather

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"weathersense.xyz/weather-metrics-service/pkg/common"
	"weathersense.xyz/weather-metrics-service/pkg/models"
)

func (w *Weather) insertReading(input *models.Reading) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	if input.SensorID <= 0 {
		return 0, invalidParam("sensor_id", "must be a positive integer")
	}

	if !input.MetricType.Valid() {
		return 0, invalidParam("metric_type", "must be one of temperature, humidity, wind_speed")
	}

	if math.IsNaN(input.Value) || math.IsInf(input.Value, 0) {
		return 0, invalidParam("value", "must be a finite number")
	}

	reading := models.Reading{
		SensorID:   input.SensorID,
		MetricType: input.MetricType,
		Value:      input.Value,
		Timestamp:  input.Timestamp,
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	logger.Info("Received reading", zap.Reflect("reading", reading))

	if err := w.Db.Conn.Create(&reading).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Warn("Reading rejected by storage constraint", zap.Error(err))
			return 0, &ConflictError{Err: err}
		}
		logger.Error("Failed to store reading", zap.Error(err))
		return 0, &StorageError{Op: "insert reading", Err: err}
	}

	logger.Info("Stored reading", zap.Uint("id", reading.ID))
	return reading.ID, nil
}

type IIngestImpl struct {
	weather *Weather
}

func (ii *IIngestImpl) InsertReading(input *models.Reading) (uint, error) {
	return ii.weather.insertReading(input)
}

func (w *Weather) GetIIngest() IIngest {
	return &IIngestImpl{weather: w}
}
