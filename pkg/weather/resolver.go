package weather

import (
	"strconv"
	"strings"
	"time"

	"weathersense.xyz/weather-metrics-service/pkg/common"
	"weathersense.xyz/weather-metrics-service/pkg/models"
)

// SensorSelector is the parsed form of the sensors parameter: either match
// every sensor present in storage, or an explicit set of IDs.
type SensorSelector struct {
	All bool
	IDs []int
}

// DateRange is half-open: Start is included, End is excluded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Request is the closed set of query shapes: *LatestRequest or
// *AggregateRequest, chosen once per request by Resolve.
type Request interface {
	queryRequest()
}

type LatestRequest struct {
	Sensors SensorSelector
	Metrics []string
}

type AggregateRequest struct {
	Sensors   SensorSelector
	Metrics   []string
	Statistic Statistic
	Range     DateRange
}

func (*LatestRequest) queryRequest()    {}
func (*AggregateRequest) queryRequest() {}

const dateLayout = "2006-01-02"

// ResolveSensors parses "all" or a comma-separated list of integer IDs. An
// empty string counts as one invalid token.
func ResolveSensors(sensors string) (SensorSelector, error) {
	if sensors == "all" {
		return SensorSelector{All: true}, nil
	}

	tokens := strings.Split(sensors, ",")
	ids := make([]int, 0, len(tokens))
	for _, token := range tokens {
		id, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return SensorSelector{}, invalidParam("sensors", "invalid sensor id format")
		}
		ids = append(ids, id)
	}
	return SensorSelector{IDs: ids}, nil
}

// ResolveDateRange parses two YYYY-MM-DD dates into a half-open range that
// includes the whole end_date calendar day.
func ResolveDateRange(startDate, endDate string) (DateRange, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return DateRange{}, invalidParam("start_date", "invalid date format, use YYYY-MM-DD")
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return DateRange{}, invalidParam("end_date", "invalid date format, use YYYY-MM-DD")
	}

	if start.After(end) {
		return DateRange{}, invalidParam("start_date", "start date must not be after end date")
	}

	return DateRange{Start: start, End: end.AddDate(0, 0, 1)}, nil
}

// ResolveMetrics splits the comma-separated metric list, trimming whitespace
// and dropping empty tokens.
func ResolveMetrics(metrics string) ([]string, error) {
	tokens := common.Mapper(strings.Split(metrics, ","), strings.TrimSpace)
	var resolved []string
	for _, token := range tokens {
		if token != "" {
			resolved = append(resolved, token)
		}
	}
	if len(resolved) == 0 {
		return nil, invalidParam("metrics", "at least one metric must be specified")
	}
	return resolved, nil
}

// Resolve turns raw parameters into a LatestRequest or an AggregateRequest.
// All validation happens here, before any storage access: an invalid
// statistic is rejected in every mode, and the date parameters are
// both-or-neither.
func Resolve(params models.QueryParams) (Request, error) {
	sensors, err := ResolveSensors(params.Sensors)
	if err != nil {
		return nil, err
	}

	metrics, err := ResolveMetrics(params.Metrics)
	if err != nil {
		return nil, err
	}

	var statistic Statistic
	if params.Statistic != "" {
		if statistic, err = ParseStatistic(params.Statistic); err != nil {
			return nil, err
		}
	}

	hasStart := params.StartDate != ""
	hasEnd := params.EndDate != ""

	if hasStart != hasEnd {
		return nil, invalidParam("start_date", "start_date and end_date must be given together")
	}

	if !hasStart {
		return &LatestRequest{Sensors: sensors, Metrics: metrics}, nil
	}

	if params.Statistic == "" {
		return nil, missingParam("statistic")
	}

	dateRange, err := ResolveDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	return &AggregateRequest{
		Sensors:   sensors,
		Metrics:   metrics,
		Statistic: statistic,
		Range:     dateRange,
	}, nil
}
