package request

import (
	"strings"

	"floorcraft/internal/domain/entities"
)

type CatalogEntryRequest struct {
	Key        string  `json:"key" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price"`
	Multiplier float64 `json:"multiplier"`
}

type SaveCatalogRequest struct {
	FloorTypes []CatalogEntryRequest `json:"floor_types" binding:"required"`
	FloorSizes []CatalogEntryRequest `json:"floor_sizes"`
	Finishes   []CatalogEntryRequest `json:"finishes"`
	Stains     []CatalogEntryRequest `json:"stains"`
}

func (r SaveCatalogRequest) ToCatalog(contractorID string) entities.Catalog {
	return entities.Catalog{
		ContractorID: strings.TrimSpace(contractorID),
		FloorTypes:   toEntries(r.FloorTypes),
		FloorSizes:   toEntries(r.FloorSizes),
		Finishes:     toEntries(r.Finishes),
		Stains:       toEntries(r.Stains),
	}
}

func toEntries(reqs []CatalogEntryRequest) map[string]entities.CatalogEntry {
	if len(reqs) == 0 {
		return nil
	}
	out := make(map[string]entities.CatalogEntry, len(reqs))
	for _, e := range reqs {
		key := strings.TrimSpace(e.Key)
		if key == "" {
			continue
		}
		out[key] = entities.CatalogEntry{
			Key:        key,
			Name:       strings.TrimSpace(e.Name),
			Price:      e.Price,
			Multiplier: e.Multiplier,
		}
	}
	return out
}
