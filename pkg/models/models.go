package models

import "time"

type MetricType string

const (
	MetricTypeTemperature MetricType = "temperature"
	MetricTypeHumidity    MetricType = "humidity"
	MetricTypeWindSpeed   MetricType = "wind_speed"
)

func AllMetricTypes() []MetricType {
	return []MetricType{MetricTypeTemperature, MetricTypeHumidity, MetricTypeWindSpeed}
}

func (m MetricType) Valid() bool {
	switch m {
	case MetricTypeTemperature, MetricTypeHumidity, MetricTypeWindSpeed:
		return true
	}
	return false
}

// Reading is one time-stamped measurement reported by a sensor. Rows are
// insert-only: never updated, never deleted. Duplicate (sensor_id,
// metric_type, timestamp) rows are legal and all retained.
type Reading struct {
	ID         uint       `gorm:"primaryKey"`
	SensorID   int        `gorm:"index"`
	MetricType MetricType `gorm:"type:varchar(50);index;check:metric_type IN ('temperature','humidity','wind_speed')"`
	Value      float64
	Timestamp  time.Time `gorm:"index"`
}
