package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"floorcraft/internal/domain/entities"
	"floorcraft/internal/usecase/interfaces"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// ICatalogUseCase exposes the contractor price template. Contractors without
// a saved template get the default hardwood catalog, so pricing always has a
// snapshot to resolve against.
type ICatalogUseCase interface {
	GetActive(ctx context.Context, contractorID string) (entities.Catalog, error)
	Save(ctx context.Context, c entities.Catalog) (entities.Catalog, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetActive(ctx context.Context, contractorID string) (entities.Catalog, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.Catalog{}, ErrInvalidContractorID
	}

	c, err := u.repo.GetByContractorID(ctx, contractorID)
	if err != nil {
		return entities.Catalog{}, err
	}
	if c.ContractorID == "" {
		return entities.DefaultCatalog(contractorID), nil
	}
	return c, nil
}

func (u *CatalogUseCase) Save(ctx context.Context, c entities.Catalog) (entities.Catalog, error) {
	c.ContractorID = strings.TrimSpace(c.ContractorID)
	if c.ContractorID == "" {
		return entities.Catalog{}, ErrInvalidContractorID
	}
	if len(c.FloorTypes) == 0 {
		return entities.Catalog{}, ErrInvalidCatalog
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return u.repo.Save(ctx, c)
}
