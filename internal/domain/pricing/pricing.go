package pricing

import "floorcraft/internal/domain/entities"

// Square footage contributed by each stair unit. A fixed heuristic used in
// the trade, not a catalog-driven value.
const (
	treadSquareFeet = 3.0
	riserSquareFeet = 1.5
)

// Quote is the recomputed pricing tuple the caller persists alongside the
// edited specs or measurements.
type Quote struct {
	PricePerSqFt    float64
	TotalSquareFeet float64
	EstimatedCost   float64
}

// PricePerSquareFoot resolves the selected catalog keys into a per-square-foot
// rate: base price times the plank-size multiplier, plus the finish and stain
// additive prices.
//
// The function is total: missing catalog entries degrade to a zero
// contribution (identity for the size multiplier) instead of failing, so an
// incomplete estimate still saves mid-edit.
func PricePerSquareFoot(specs entities.FloorSpecs, catalog entities.Catalog) float64 {
	base := catalog.FloorTypePrice(specs.FloorType)
	mult := catalog.SizeMultiplier(specs.FloorSize)
	finish := catalog.FinishPrice(specs.FinishType)
	stain := catalog.StainPrice(specs.StainType)
	return base*mult + finish + stain
}

// TotalSquareFeet sums the room areas plus the stair approximation. Rooms
// with a missing dimension contribute zero; only the first three rooms count.
func TotalSquareFeet(rooms []entities.RoomMeasurement, stairs entities.StairMeasurement) float64 {
	total := 0.0
	for i, room := range rooms {
		if i >= entities.MaxRooms {
			break
		}
		total += room.Area()
	}
	total += float64(stairs.Treads)*treadSquareFeet + float64(stairs.Risers)*riserSquareFeet
	return total
}

// Estimate composes the rate and area into the full pricing tuple.
func Estimate(specs entities.FloorSpecs, rooms []entities.RoomMeasurement, stairs entities.StairMeasurement, catalog entities.Catalog) Quote {
	rate := PricePerSquareFoot(specs, catalog)
	area := TotalSquareFeet(rooms, stairs)
	return Quote{
		PricePerSqFt:    rate,
		TotalSquareFeet: area,
		EstimatedCost:   rate * area,
	}
}
