package service

import (
	"context"
	"scrapquote/internal/schema"
)

type specsGetter interface {
	GetSpecs(ctx context.Context, query schema.VehicleQuery) (schema.SpecResult, error)
}
