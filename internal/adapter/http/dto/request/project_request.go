package request

import (
	"strings"
	"time"

	"floorcraft/internal/domain/entities"
)

type CreateProjectRequest struct {
	ContractorID string `json:"contractor_id" binding:"required"`
	CustomerName string `json:"customer_name"`
}

type SpecsRequest struct {
	FloorType  string `json:"floor_type"`
	FloorSize  string `json:"floor_size"`
	FinishType string `json:"finish_type"`
	StainType  string `json:"stain_type"`
}

func (r SpecsRequest) ToSpecs() entities.FloorSpecs {
	return entities.FloorSpecs{
		FloorType:  strings.TrimSpace(r.FloorType),
		FloorSize:  strings.TrimSpace(r.FloorSize),
		FinishType: strings.TrimSpace(r.FinishType),
		StainType:  strings.TrimSpace(r.StainType),
	}
}

type RoomRequest struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

type MeasurementsRequest struct {
	Rooms  []RoomRequest `json:"rooms"`
	Treads int           `json:"treads"`
	Risers int           `json:"risers"`
}

func (r MeasurementsRequest) ToMeasurements() ([]entities.RoomMeasurement, entities.StairMeasurement) {
	rooms := make([]entities.RoomMeasurement, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, entities.RoomMeasurement{
			Name:   strings.TrimSpace(room.Name),
			Length: room.Length,
			Width:  room.Width,
		})
	}
	if len(rooms) == 0 {
		rooms = nil
	}
	return rooms, entities.StairMeasurement{Treads: r.Treads, Risers: r.Risers}
}

type CostOverrideRequest struct {
	EstimatedCost float64 `json:"estimated_cost"`
}

type ScheduleRequest struct {
	Policy string `json:"policy" binding:"required"`
}

type InstallmentAmountsRequest struct {
	Deposit  float64 `json:"deposit"`
	Progress float64 `json:"progress"`
	Final    float64 `json:"final"`
}

// MarkPaidRequest records an offline payment. PaidDate defaults to now when
// omitted.
type MarkPaidRequest struct {
	Method   string     `json:"method" binding:"required"`
	PaidDate *time.Time `json:"paid_date"`
}

func (r MarkPaidRequest) ResolvePaidDate() time.Time {
	if r.PaidDate != nil {
		return r.PaidDate.UTC()
	}
	return time.Time{}
}

// SignatureRequest carries the opaque signature blob (base64 of the drawn
// signature; the engine never decodes it).
type SignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}
