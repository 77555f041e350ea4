package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingestRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_ingest_requests_total",
		Help: "Ingest requests by outcome.",
	}, []string{"outcome"})

	queryRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_query_requests_total",
		Help: "Query requests by outcome.",
	}, []string{"outcome"})
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)
