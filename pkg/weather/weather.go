package weather

import (
	"weathersense.xyz/weather-metrics-service/pkg/db"
	"weathersense.xyz/weather-metrics-service/pkg/models"
)

type IIngest interface {
	InsertReading(input *models.Reading) (uint, error)
}

type IQuery interface {
	Run(params models.QueryParams) (*models.QueryResult, error)
}

// Weather wires the two services onto the shared storage collaborator. The
// struct holds no per-request state; every request is handled independently.
type Weather struct {
	Db     db.DB
	Ingest IIngest
	Query  IQuery
}

type ServiceOpts struct {
	Ingest IIngest
	Query  IQuery
}

func (w *Weather) WithServices(opts ServiceOpts) *Weather {
	if opts.Ingest != nil {
		w.Ingest = opts.Ingest
	}
	if opts.Query != nil {
		w.Query = opts.Query
	}
	return w
}
