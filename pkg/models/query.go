package models

// QueryParams carries the raw query-string parameters as the transport
// received them, before any validation.
type QueryParams struct {
	Sensors   string
	Metrics   string
	Statistic string
	StartDate string
	EndDate   string
}

// SensorRecord is one sensor's entry in a query response: metric name to
// value, plus an ingested_at timestamp in latest mode only.
type SensorRecord map[string]any

// QueryResult is the response shape shared by both query modes, keyed by
// sensor ID rendered as a decimal string.
type QueryResult struct {
	Statistic string                  `json:"statistic"`
	Results   map[string]SensorRecord `json:"results"`
}
