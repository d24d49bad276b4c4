package response

import (
	"testing"
	"time"

	"floorcraft/internal/domain/entities"
)

func TestFromProject(t *testing.T) {
	now := time.Now().UTC()
	signed := now.Add(-time.Hour)
	p := entities.Project{
		ID:           "p-1",
		ContractorID: "contractor-1",
		CustomerName: "Jane",
		Specs: entities.FloorSpecs{
			FloorType:  "red_oak",
			FloorSize:  "2_5_inch",
			FinishType: "stain",
			StainType:  "golden_oak",
		},
		Rooms:             []entities.RoomMeasurement{{Name: "living", Length: 12, Width: 10}},
		Stairs:            entities.StairMeasurement{Treads: 10, Risers: 11},
		PricePerSqFt:      13.025,
		TotalSquareFeet:   166.5,
		EstimatedCost:     2168.6625,
		Status:            entities.ProjectStatusSent,
		Schedule:          entities.Schedule603010,
		Deposit:           entities.Installment{Amount: 937.80, Paid: true, PaidDate: &signed, PaymentMethod: "check"},
		CustomerSignature: "data:image/png;base64,AAAA",
		CustomerSignedAt:  &signed,
		SendCount:         1,
		SentAt:            &now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromProject(p)
	if res.ID != "p-1" || res.ProjectID != "p-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.FloorType != "red_oak" || res.StainType != "golden_oak" {
		t.Fatalf("unexpected specs: %+v", res)
	}
	if res.Treads != 10 || res.Risers != 11 {
		t.Fatalf("unexpected stairs: %+v", res)
	}
	if res.Status != "sent" || res.PaymentSchedule != "60_30_10" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if !res.Deposit.Paid || res.Deposit.PaymentMethod != "check" {
		t.Fatalf("unexpected deposit: %+v", res.Deposit)
	}
	if !res.CustomerSigned || res.ContractorSigned {
		t.Fatalf("unexpected signature flags: %+v", res)
	}
	if res.CustomerSignedAt == nil || !res.CustomerSignedAt.Equal(signed) {
		t.Fatalf("unexpected signed at: %+v", res.CustomerSignedAt)
	}
	if res.SendCount != 1 || res.SentAt == nil {
		t.Fatalf("unexpected send fields: %+v", res)
	}
}
