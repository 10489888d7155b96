package app

import (
	"context"
	"scrapquote/internal/schema"
)

type documentStore interface {
	Insert(ctx context.Context, id string, document schema.PickupDocument) error
}
