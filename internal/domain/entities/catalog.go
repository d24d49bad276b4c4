package entities

import "time"

// CatalogEntry is one priced option in a contractor's catalog.
//
// Pricing semantics depend on the category the entry belongs to:
//   - floor types and finishes carry an absolute per-square-foot Price
//   - sizes carry a Multiplier applied to the floor type's base price
//   - stains carry an additive Price
//
// Price and Multiplier are mutually exclusive per category; the unused
// field stays zero.
type CatalogEntry struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Price      float64 `json:"price,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

// Catalog is a contractor-owned price template.
//
// Storage model (DynamoDB):
//   - PK: contractor_id (one active catalog per contractor)
//
// The catalog is always passed into pricing as an immutable snapshot; the
// calculator never reaches into storage itself.
type Catalog struct {
	ContractorID string                  `json:"contractor_id"`
	FloorTypes   map[string]CatalogEntry `json:"floor_types"`
	FloorSizes   map[string]CatalogEntry `json:"floor_sizes"`
	Finishes     map[string]CatalogEntry `json:"finishes"`
	Stains       map[string]CatalogEntry `json:"stains"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// FloorTypePrice returns the per-square-foot base price for key, or 0 when
// the key is absent. Missing entries never fail pricing.
func (c Catalog) FloorTypePrice(key string) float64 {
	if e, ok := c.FloorTypes[key]; ok {
		return e.Price
	}
	return 0
}

// SizeMultiplier returns the plank-size multiplier for key. A missing size
// resolves to the identity multiplier so the base price still counts.
func (c Catalog) SizeMultiplier(key string) float64 {
	if e, ok := c.FloorSizes[key]; ok && e.Multiplier > 0 {
		return e.Multiplier
	}
	return 1
}

// FinishPrice returns the additive finish price for key, or 0 when absent.
func (c Catalog) FinishPrice(key string) float64 {
	if e, ok := c.Finishes[key]; ok {
		return e.Price
	}
	return 0
}

// StainPrice returns the additive stain price for key. An empty key means
// no stain was selected and contributes 0.
func (c Catalog) StainPrice(key string) float64 {
	if key == "" {
		return 0
	}
	if e, ok := c.Stains[key]; ok {
		return e.Price
	}
	return 0
}

// DefaultCatalog returns the standard hardwood template used when a
// contractor has not saved a custom one yet.
func DefaultCatalog(contractorID string) Catalog {
	now := time.Now().UTC()
	return Catalog{
		ContractorID: contractorID,
		FloorTypes: map[string]CatalogEntry{
			"red_oak":   {Key: "red_oak", Name: "Red Oak", Price: 8.50},
			"white_oak": {Key: "white_oak", Name: "White Oak", Price: 9.25},
			"maple":     {Key: "maple", Name: "Maple", Price: 9.75},
			"hickory":   {Key: "hickory", Name: "Hickory", Price: 10.50},
		},
		FloorSizes: map[string]CatalogEntry{
			"2_25_inch": {Key: "2_25_inch", Name: `2 1/4" Strip`, Multiplier: 1.0},
			"2_5_inch":  {Key: "2_5_inch", Name: `2 1/2" Strip`, Multiplier: 1.15},
			"3_25_inch": {Key: "3_25_inch", Name: `3 1/4" Plank`, Multiplier: 1.25},
			"5_inch":    {Key: "5_inch", Name: `5" Wide Plank`, Multiplier: 1.40},
		},
		Finishes: map[string]CatalogEntry{
			"natural": {Key: "natural", Name: "Natural Finish", Price: 1.50},
			"stain":   {Key: "stain", Name: "Stained Finish", Price: 2.50},
			"custom":  {Key: "custom", Name: "Custom Finish", Price: 3.50},
		},
		Stains: map[string]CatalogEntry{
			"golden_oak": {Key: "golden_oak", Name: "Golden Oak", Price: 0.75},
			"provincial": {Key: "provincial", Name: "Provincial", Price: 0.75},
			"jacobean":   {Key: "jacobean", Name: "Jacobean", Price: 1.00},
			"ebony":      {Key: "ebony", Name: "Ebony", Price: 1.25},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
