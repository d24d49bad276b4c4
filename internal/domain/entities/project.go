package entities

import "time"

// ProjectStatus represents the lifecycle of a flooring project.
//
// Domain notes:
//   - draft -> quoted happens once pricing has been computed.
//   - sent is set when the estimate is emailed to the customer.
//   - approved is derived from the dual-signature guard and never regresses.
//   - in_progress and completed are flipped manually by the contractor.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusQuoted     ProjectStatus = "quoted"
	ProjectStatusSent       ProjectStatus = "sent"
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// SchedulePolicy names the rule used to derive installment amounts from the
// estimated cost.
type SchedulePolicy string

const (
	Schedule603010     SchedulePolicy = "60_30_10"
	Schedule5050       SchedulePolicy = "50_50"
	Schedule100Upfront SchedulePolicy = "100_upfront"
	ScheduleCustom     SchedulePolicy = "custom"
)

// InstallmentKind identifies one of the three scheduled payments.
type InstallmentKind string

const (
	InstallmentDeposit  InstallmentKind = "deposit"
	InstallmentProgress InstallmentKind = "progress"
	InstallmentFinal    InstallmentKind = "final"
)

// SignatureParty identifies who is signing the contract.
type SignatureParty string

const (
	PartyCustomer   SignatureParty = "customer"
	PartyContractor SignatureParty = "contractor"
)

// Installment is one scheduled payment against the project total.
//
// Payments are recorded manually (check, cash, ...); Amount is fixed by the
// schedule derivation and marking paid twice never double-counts it.
type Installment struct {
	Amount        float64    `json:"amount"`
	Paid          bool       `json:"paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
}

// RoomMeasurement is one named room. A room counts toward the total area
// only when both dimensions are positive.
type RoomMeasurement struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Area returns length*width in square feet, or 0 when a dimension is missing.
func (r RoomMeasurement) Area() float64 {
	if r.Length <= 0 || r.Width <= 0 {
		return 0
	}
	return r.Length * r.Width
}

// StairMeasurement holds tread/riser counts. Stairs contribute a fixed
// per-unit approximation to the total area, not a catalog-driven value.
type StairMeasurement struct {
	Treads int `json:"treads"`
	Risers int `json:"risers"`
}

// FloorSpecs are the catalog keys selected for a project. StainType is
// optional and empty when the finish needs no stain.
type FloorSpecs struct {
	FloorType  string `json:"floor_type"`
	FloorSize  string `json:"floor_size"`
	FinishType string `json:"finish_type"`
	StainType  string `json:"stain_type,omitempty"`
}

// MaxRooms is the number of named rooms a project can carry.
const MaxRooms = 3

// Project is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contractor_id-index): contractor_id
//
// Derived fields (PricePerSqFt, TotalSquareFeet, EstimatedCost, TotalPaid,
// BalanceDue, Status promotion to approved) are recomputed by the use case
// layer; callers never set them directly, with the single exception of the
// contractor cost override which sticks until the next spec or measurement
// change recomputes it.
type Project struct {
	ID           string `json:"id"`
	ContractorID string `json:"contractor_id"`
	CustomerName string `json:"customer_name"`

	Specs  FloorSpecs        `json:"specs"`
	Rooms  []RoomMeasurement `json:"rooms,omitempty"`
	Stairs StairMeasurement  `json:"stairs"`

	PricePerSqFt    float64 `json:"price_per_sq_ft"`
	TotalSquareFeet float64 `json:"total_square_feet"`
	EstimatedCost   float64 `json:"estimated_cost"`

	Status   ProjectStatus  `json:"status"`
	Schedule SchedulePolicy `json:"payment_schedule"`

	Deposit  Installment `json:"deposit"`
	Progress Installment `json:"progress"`
	Final    Installment `json:"final"`

	TotalPaid  float64 `json:"total_paid"`
	BalanceDue float64 `json:"balance_due"`

	CustomerSignature   string     `json:"customer_signature,omitempty"`
	CustomerSignedAt    *time.Time `json:"customer_signed_at,omitempty"`
	ContractorSignature string     `json:"contractor_signature,omitempty"`
	ContractorSignedAt  *time.Time `json:"contractor_signed_at,omitempty"`

	SendCount int        `json:"send_count"`
	SentAt    *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Installment returns the installment for kind. Unknown kinds return a zero
// installment.
func (p Project) Installment(kind InstallmentKind) Installment {
	switch kind {
	case InstallmentDeposit:
		return p.Deposit
	case InstallmentProgress:
		return p.Progress
	case InstallmentFinal:
		return p.Final
	}
	return Installment{}
}

// SetInstallment stores inst into the slot for kind.
func (p *Project) SetInstallment(kind InstallmentKind, inst Installment) {
	switch kind {
	case InstallmentDeposit:
		p.Deposit = inst
	case InstallmentProgress:
		p.Progress = inst
	case InstallmentFinal:
		p.Final = inst
	}
}

// Signed reports whether party has already signed.
func (p Project) Signed(party SignatureParty) bool {
	switch party {
	case PartyCustomer:
		return p.CustomerSignature != ""
	case PartyContractor:
		return p.ContractorSignature != ""
	}
	return false
}

// FullySigned reports whether both signature slots are occupied.
func (p Project) FullySigned() bool {
	return p.CustomerSignature != "" && p.ContractorSignature != ""
}

// ValidSchedulePolicy reports whether s is one of the fixed policy names.
func ValidSchedulePolicy(s SchedulePolicy) bool {
	switch s {
	case Schedule603010, Schedule5050, Schedule100Upfront, ScheduleCustom:
		return true
	}
	return false
}

// ValidInstallmentKind reports whether k names one of the three slots.
func ValidInstallmentKind(k InstallmentKind) bool {
	switch k {
	case InstallmentDeposit, InstallmentProgress, InstallmentFinal:
		return true
	}
	return false
}

// ValidSignatureParty reports whether s is customer or contractor.
func ValidSignatureParty(s SignatureParty) bool {
	return s == PartyCustomer || s == PartyContractor
}
