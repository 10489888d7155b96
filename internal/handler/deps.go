package handler

import (
	"context"
	"scrapquote/internal/schema"
)

type quoter interface {
	CurbWeight(ctx context.Context, query schema.VehicleQuery) (float64, error)
	ScrapQuote(ctx context.Context, query schema.VehicleQuery, ontario bool) (schema.ScrapQuote, error)
}

type documentSaver interface {
	Save(ctx context.Context, document schema.PickupDocument) (string, error)
}
