package response

import (
	"time"

	"floorcraft/internal/domain/entities"
)

type InstallmentResponse struct {
	Amount        float64    `json:"amount"`
	Paid          bool       `json:"paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
}

type ProjectResponse struct {
	ProjectID    string `json:"project_id"`
	ID           string `json:"id"`
	ContractorID string `json:"contractor_id"`
	CustomerName string `json:"customer_name"`

	FloorType  string `json:"floor_type,omitempty"`
	FloorSize  string `json:"floor_size,omitempty"`
	FinishType string `json:"finish_type,omitempty"`
	StainType  string `json:"stain_type,omitempty"`

	Rooms  []entities.RoomMeasurement `json:"rooms,omitempty"`
	Treads int                        `json:"treads"`
	Risers int                        `json:"risers"`

	PricePerSqFt    float64 `json:"price_per_sq_ft"`
	TotalSquareFeet float64 `json:"total_square_feet"`
	EstimatedCost   float64 `json:"estimated_cost"`

	Status          string `json:"status"`
	PaymentSchedule string `json:"payment_schedule"`

	Deposit  InstallmentResponse `json:"deposit"`
	Progress InstallmentResponse `json:"progress"`
	Final    InstallmentResponse `json:"final"`

	TotalPaid  float64 `json:"total_paid"`
	BalanceDue float64 `json:"balance_due"`

	CustomerSigned     bool       `json:"customer_signed"`
	CustomerSignedAt   *time.Time `json:"customer_signed_at,omitempty"`
	ContractorSigned   bool       `json:"contractor_signed"`
	ContractorSignedAt *time.Time `json:"contractor_signed_at,omitempty"`

	SendCount int        `json:"send_count"`
	SentAt    *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromProject maps the aggregate into the API shape. Signature blobs are
// deliberately not echoed back; callers only see whether a party has signed.
func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:    p.ID,
		ID:           p.ID,
		ContractorID: p.ContractorID,
		CustomerName: p.CustomerName,

		FloorType:  p.Specs.FloorType,
		FloorSize:  p.Specs.FloorSize,
		FinishType: p.Specs.FinishType,
		StainType:  p.Specs.StainType,

		Rooms:  p.Rooms,
		Treads: p.Stairs.Treads,
		Risers: p.Stairs.Risers,

		PricePerSqFt:    p.PricePerSqFt,
		TotalSquareFeet: p.TotalSquareFeet,
		EstimatedCost:   p.EstimatedCost,

		Status:          string(p.Status),
		PaymentSchedule: string(p.Schedule),

		Deposit:  fromInstallment(p.Deposit),
		Progress: fromInstallment(p.Progress),
		Final:    fromInstallment(p.Final),

		TotalPaid:  p.TotalPaid,
		BalanceDue: p.BalanceDue,

		CustomerSigned:     p.CustomerSignature != "",
		CustomerSignedAt:   p.CustomerSignedAt,
		ContractorSigned:   p.ContractorSignature != "",
		ContractorSignedAt: p.ContractorSignedAt,

		SendCount: p.SendCount,
		SentAt:    p.SentAt,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func fromInstallment(inst entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		Amount:        inst.Amount,
		Paid:          inst.Paid,
		PaidDate:      inst.PaidDate,
		PaymentMethod: inst.PaymentMethod,
	}
}
