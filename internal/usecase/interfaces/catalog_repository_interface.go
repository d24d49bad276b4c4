package interfaces

import (
	"context"

	"floorcraft/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for Catalog.
//
// One active catalog per contractor; GetByContractorID returns a zero-value
// Catalog (empty ContractorID) when none has been saved yet.
type ICatalogRepository interface {
	GetByContractorID(ctx context.Context, contractorID string) (entities.Catalog, error)
	Save(ctx context.Context, c entities.Catalog) (entities.Catalog, error)
}
