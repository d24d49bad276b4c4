package request

import (
	"testing"
	"time"
)

func TestSpecsRequest_ToSpecs(t *testing.T) {
	r := SpecsRequest{
		FloorType:  " red_oak ",
		FloorSize:  "2_5_inch",
		FinishType: " stain",
		StainType:  "golden_oak ",
	}

	specs := r.ToSpecs()
	if specs.FloorType != "red_oak" || specs.FloorSize != "2_5_inch" {
		t.Fatalf("unexpected specs: %+v", specs)
	}
	if specs.FinishType != "stain" || specs.StainType != "golden_oak" {
		t.Fatalf("unexpected specs: %+v", specs)
	}
}

func TestMeasurementsRequest_ToMeasurements(t *testing.T) {
	r := MeasurementsRequest{
		Rooms: []RoomRequest{
			{Name: " living ", Length: 12, Width: 10},
			{Name: "hall", Length: 8, Width: 4},
		},
		Treads: 10,
		Risers: 11,
	}

	rooms, stairs := r.ToMeasurements()
	if len(rooms) != 2 || rooms[0].Name != "living" || rooms[0].Length != 12 {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
	if stairs.Treads != 10 || stairs.Risers != 11 {
		t.Fatalf("unexpected stairs: %+v", stairs)
	}

	rooms, _ = MeasurementsRequest{}.ToMeasurements()
	if rooms != nil {
		t.Fatalf("expected nil rooms, got %+v", rooms)
	}
}

func TestMarkPaidRequest_ResolvePaidDate(t *testing.T) {
	if got := (MarkPaidRequest{Method: "check"}).ResolvePaidDate(); !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}

	loc := time.FixedZone("UTC-5", -5*60*60)
	when := time.Date(2024, 1, 10, 0, 0, 0, 0, loc)
	got := (MarkPaidRequest{Method: "check", PaidDate: &when}).ResolvePaidDate()
	if got.Location() != time.UTC || !got.Equal(when) {
		t.Fatalf("expected UTC instant, got %v", got)
	}
}
