package wrapper

import (
	"context"
	"scrapquote/internal/dto/vpic_dto"
)

type specsClient interface {
	FetchSpecs(ctx context.Context, year int, makeName, modelName string) (*vpic_dto.ResponseBody, error)
}
