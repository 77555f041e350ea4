package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"weathersense.xyz/weather-metrics-service/pkg/common"
	"weathersense.xyz/weather-metrics-service/pkg/models"
	"weathersense.xyz/weather-metrics-service/pkg/weather"
)

var allowedMetricTypes = common.Mapper(models.AllMetricTypes(), func(m models.MetricType) string {
	return string(m)
})

type ReadingRequest struct {
	SensorID   int       `json:"sensor_id" zog:"sensor_id"`
	MetricType string    `json:"metric_type" zog:"metric_type"`
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"sensorID":   z.Int().GT(0).Required(),
	"metricType": z.String().OneOf(allowedMetricTypes).Required(),
	"value":       z.Float64().Required(),
	"timestamp":   z.Time(),
})

func (rs *RestfulServer) PostMetric(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		ingestRequests.WithLabelValues(outcomeInvalid).Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err})
		return
	}

	id, err := rs.Core.Ingest.InsertReading(&models.Reading{
		SensorID:   req.SensorID,
		MetricType: models.MetricType(req.MetricType),
		Value:      req.Value,
		Timestamp:  req.Timestamp,
	})
	if err != nil {
		var validationErr *weather.ValidationError
		var conflictErr *weather.ConflictError
		switch {
		case errors.As(err, &validationErr):
			ingestRequests.WithLabelValues(outcomeInvalid).Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Error()})
		case errors.As(err, &conflictErr):
			ingestRequests.WithLabelValues(outcomeConflict).Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "Duplicate or invalid data"})
		default:
			// storage detail stays in the server logs
			ingestRequests.WithLabelValues(outcomeError).Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest metric"})
		}
		return
	}

	ingestRequests.WithLabelValues(outcomeOK).Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Metric ingested successfully",
		"id":      id,
	})
}

func (rs *RestfulServer) GetQuery(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	params := models.QueryParams{
		Sensors:   c.DefaultQuery("sensors", "all"),
		Metrics:   c.Query("metrics"),
		Statistic: c.Query("statistic"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	result, err := rs.Core.Query.Run(params)
	if err != nil {
		var validationErr *weather.ValidationError
		if errors.As(err, &validationErr) {
			queryRequests.WithLabelValues(outcomeInvalid).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		queryRequests.WithLabelValues(outcomeError).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query metrics"})
		return
	}

	queryRequests.WithLabelValues(outcomeOK).Inc()
	c.JSON(http.StatusOK, result)
}
