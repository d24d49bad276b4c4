package pricing

import (
	"testing"

	"floorcraft/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() entities.Catalog {
	return entities.DefaultCatalog("contractor-1")
}

func TestPricePerSquareFoot(t *testing.T) {
	cat := testCatalog()

	t.Run("base times multiplier plus finish plus stain", func(t *testing.T) {
		specs := entities.FloorSpecs{
			FloorType:  "red_oak",
			FloorSize:  "2_5_inch",
			FinishType: "stain",
			StainType:  "golden_oak",
		}
		// 8.50*1.15 + 2.50 + 0.75
		assert.InDelta(t, 13.025, PricePerSquareFoot(specs, cat), 1e-9)
	})

	t.Run("no stain selected", func(t *testing.T) {
		specs := entities.FloorSpecs{FloorType: "red_oak", FloorSize: "2_25_inch", FinishType: "natural"}
		assert.InDelta(t, 10.0, PricePerSquareFoot(specs, cat), 1e-9)
	})

	t.Run("missing floor type contributes zero", func(t *testing.T) {
		specs := entities.FloorSpecs{FloorType: "bamboo", FloorSize: "2_5_inch", FinishType: "natural"}
		assert.InDelta(t, 1.50, PricePerSquareFoot(specs, cat), 1e-9)
	})

	t.Run("missing size falls back to identity multiplier", func(t *testing.T) {
		specs := entities.FloorSpecs{FloorType: "red_oak", FloorSize: "7_inch", FinishType: "natural"}
		assert.InDelta(t, 10.0, PricePerSquareFoot(specs, cat), 1e-9)
	})

	t.Run("empty specs price to zero", func(t *testing.T) {
		assert.Zero(t, PricePerSquareFoot(entities.FloorSpecs{}, cat))
	})
}

func TestTotalSquareFeet(t *testing.T) {
	t.Run("rooms plus stairs", func(t *testing.T) {
		rooms := []entities.RoomMeasurement{
			{Name: "living", Length: 12, Width: 10},
			{Name: "hall", Length: 8, Width: 4},
		}
		stairs := entities.StairMeasurement{Treads: 2, Risers: 2}
		assert.InDelta(t, 120+32+6+3, TotalSquareFeet(rooms, stairs), 1e-9)
	})

	t.Run("stairs only", func(t *testing.T) {
		got := TotalSquareFeet(nil, entities.StairMeasurement{Treads: 10, Risers: 11})
		assert.InDelta(t, 46.5, got, 1e-9)
	})

	t.Run("room with missing dimension contributes zero", func(t *testing.T) {
		rooms := []entities.RoomMeasurement{
			{Name: "living", Length: 12},
			{Name: "den", Length: 10, Width: 10},
		}
		assert.InDelta(t, 100, TotalSquareFeet(rooms, entities.StairMeasurement{}), 1e-9)
	})

	t.Run("only the first three rooms count", func(t *testing.T) {
		rooms := []entities.RoomMeasurement{
			{Length: 10, Width: 10},
			{Length: 10, Width: 10},
			{Length: 10, Width: 10},
			{Length: 10, Width: 10},
		}
		assert.InDelta(t, 300, TotalSquareFeet(rooms, entities.StairMeasurement{}), 1e-9)
	})
}

func TestEstimate(t *testing.T) {
	cat := testCatalog()
	specs := entities.FloorSpecs{
		FloorType:  "red_oak",
		FloorSize:  "2_5_inch",
		FinishType: "stain",
		StainType:  "golden_oak",
	}
	rooms := []entities.RoomMeasurement{{Name: "living", Length: 12, Width: 10}}

	q := Estimate(specs, rooms, entities.StairMeasurement{}, cat)
	require.InDelta(t, 13.025, q.PricePerSqFt, 1e-9)
	require.InDelta(t, 120, q.TotalSquareFeet, 1e-9)
	require.InDelta(t, 1563.00, q.EstimatedCost, 1e-9)

	// Cost is always the exact product of rate and area.
	assert.Equal(t, q.PricePerSqFt*q.TotalSquareFeet, q.EstimatedCost)
}
