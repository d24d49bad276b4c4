package response

import (
	"sort"
	"time"

	"floorcraft/internal/domain/entities"
)

type CatalogEntryResponse struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Price      float64 `json:"price,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

type CatalogResponse struct {
	ContractorID string                 `json:"contractor_id"`
	FloorTypes   []CatalogEntryResponse `json:"floor_types"`
	FloorSizes   []CatalogEntryResponse `json:"floor_sizes"`
	Finishes     []CatalogEntryResponse `json:"finishes"`
	Stains       []CatalogEntryResponse `json:"stains"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// FromCatalog maps the category maps into key-sorted lists so the API shape
// is stable across responses.
func FromCatalog(c entities.Catalog) CatalogResponse {
	return CatalogResponse{
		ContractorID: c.ContractorID,
		FloorTypes:   fromEntries(c.FloorTypes),
		FloorSizes:   fromEntries(c.FloorSizes),
		Finishes:     fromEntries(c.Finishes),
		Stains:       fromEntries(c.Stains),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromEntries(entries map[string]entities.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{
			Key:        e.Key,
			Name:       e.Name,
			Price:      e.Price,
			Multiplier: e.Multiplier,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
