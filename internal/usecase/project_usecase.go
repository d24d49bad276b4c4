package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"floorcraft/internal/domain/entities"
	"floorcraft/internal/domain/pricing"
	"floorcraft/internal/domain/schedule"
	"floorcraft/internal/domain/workflow"
	"floorcraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrInvalidContractorID = errors.New("invalid contractor_id")
	ErrInvalidMeasurement  = errors.New("invalid measurement")
	ErrTooManyRooms        = errors.New("too many rooms")
	ErrInvalidCostValue    = errors.New("invalid cost value")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrInvalidParty        = errors.New("invalid signature party")
)

// IProjectUseCase exposes the estimating and approval operations:
//   - spec/measurement edits recompute the cached pricing tuple
//   - the contractor cost override sticks until the next recompute
//   - send/sign events drive the status state machine
type IProjectUseCase interface {
	CreateProject(ctx context.Context, contractorID, customerName string) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Project, error)
	UpdateSpecs(ctx context.Context, id string, specs entities.FloorSpecs) (entities.Project, error)
	UpdateMeasurements(ctx context.Context, id string, rooms []entities.RoomMeasurement, stairs entities.StairMeasurement) (entities.Project, error)
	OverrideCost(ctx context.Context, id string, cost float64) (entities.Project, error)
	SendEstimate(ctx context.Context, id string) (entities.Project, error)
	SubmitSignature(ctx context.Context, id string, party entities.SignatureParty, blob string) (entities.Project, error)
	StartWork(ctx context.Context, id string) (entities.Project, error)
	CompleteWork(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo     interfaces.IProjectRepository
	catalogs interfaces.ICatalogRepository
	notifier interfaces.IEstimateNotifier
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, catalogs interfaces.ICatalogRepository, notifier interfaces.IEstimateNotifier) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, catalogs: catalogs, notifier: notifier}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, contractorID, customerName string) (entities.Project, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.Project{}, ErrInvalidContractorID
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:           uuid.NewString(),
		ContractorID: contractorID,
		CustomerName: strings.TrimSpace(customerName),
		Status:       entities.ProjectStatusDraft,
		Schedule:     entities.Schedule603010,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return u.load(ctx, id)
}

func (u *ProjectUseCase) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Project, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidContractorID
	}
	return u.repo.ListByContractorID(ctx, contractorID)
}

func (u *ProjectUseCase) UpdateSpecs(ctx context.Context, id string, specs entities.FloorSpecs) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	p.Specs = entities.FloorSpecs{
		FloorType:  strings.TrimSpace(specs.FloorType),
		FloorSize:  strings.TrimSpace(specs.FloorSize),
		FinishType: strings.TrimSpace(specs.FinishType),
		StainType:  strings.TrimSpace(specs.StainType),
	}

	p, err = u.reprice(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) UpdateMeasurements(ctx context.Context, id string, rooms []entities.RoomMeasurement, stairs entities.StairMeasurement) (entities.Project, error) {
	if len(rooms) > entities.MaxRooms {
		return entities.Project{}, ErrTooManyRooms
	}
	for _, room := range rooms {
		if room.Length < 0 || room.Width < 0 {
			return entities.Project{}, ErrInvalidMeasurement
		}
	}
	if stairs.Treads < 0 || stairs.Risers < 0 {
		return entities.Project{}, ErrInvalidMeasurement
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	p.Rooms = rooms
	p.Stairs = stairs

	p, err = u.reprice(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}

// OverrideCost lets the contractor patch the estimated cost directly. The
// override re-derives the schedule and totals, and holds until the next
// spec or measurement edit recomputes the cost from the catalog.
func (u *ProjectUseCase) OverrideCost(ctx context.Context, id string, cost float64) (entities.Project, error) {
	if cost < 0 {
		return entities.Project{}, ErrInvalidCostValue
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	p.EstimatedCost = cost
	p = applySchedule(p)
	p = workflow.MarkQuoted(p)
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) SendEstimate(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p = workflow.MarkSent(p, now)
	p.UpdatedAt = now

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	// Delivery is a downstream collaborator; a failed notification never
	// rolls back the status transition.
	if u.notifier != nil {
		if err := u.notifier.NotifyEstimateSent(ctx, saved); err != nil {
			log.Printf("[project][usecase] estimate notification failed project_id=%s err=%v", saved.ID, err)
		}
	} else {
		log.Printf("[project][usecase] no notifier configured; estimate send recorded only project_id=%s", saved.ID)
	}
	return saved, nil
}

// SubmitSignature records a party's signature exactly once. The in-memory
// gate rejects an occupied slot up front; the repository backs the same rule
// with a conditional write so a double-submit race cannot overwrite the
// stored signature.
func (u *ProjectUseCase) SubmitSignature(ctx context.Context, id string, party entities.SignatureParty, blob string) (entities.Project, error) {
	if !entities.ValidSignatureParty(party) {
		return entities.Project{}, ErrInvalidParty
	}
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return entities.Project{}, ErrInvalidSignature
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	if _, err := workflow.SubmitSignature(p, party, blob, now); err != nil {
		return entities.Project{}, err
	}

	signed, err := u.repo.SetSignature(ctx, p.ID, party, blob, now)
	if err != nil {
		return entities.Project{}, err
	}
	if signed.ID == "" {
		// Conditional write lost a race with another submission.
		log.Printf("[project][usecase] signature condition failed project_id=%s party=%s", p.ID, party)
		return entities.Project{}, workflow.ErrAlreadySigned
	}

	promoted := workflow.EvaluateApproval(signed)
	if promoted.Status == signed.Status {
		return signed, nil
	}
	log.Printf("[project][usecase] project approved project_id=%s", p.ID)
	return u.repo.UpdateStatus(ctx, p.ID, promoted.Status)
}

func (u *ProjectUseCase) StartWork(ctx context.Context, id string) (entities.Project, error) {
	return u.transition(ctx, id, workflow.StartWork)
}

func (u *ProjectUseCase) CompleteWork(ctx context.Context, id string) (entities.Project, error) {
	return u.transition(ctx, id, workflow.CompleteWork)
}

func (u *ProjectUseCase) transition(ctx context.Context, id string, step func(entities.Project) entities.Project) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	next := step(p)
	if next.Status == p.Status {
		// Redundant transition requests are no-ops.
		return p, nil
	}
	return u.repo.UpdateStatus(ctx, p.ID, next.Status)
}

func (u *ProjectUseCase) load(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// reprice recomputes the pricing tuple from the contractor's catalog
// snapshot, then re-derives the schedule against the new cost.
func (u *ProjectUseCase) reprice(ctx context.Context, p entities.Project) (entities.Project, error) {
	cat, err := u.catalogs.GetByContractorID(ctx, p.ContractorID)
	if err != nil {
		return entities.Project{}, err
	}
	if cat.ContractorID == "" {
		cat = entities.DefaultCatalog(p.ContractorID)
	}

	quote := pricing.Estimate(p.Specs, p.Rooms, p.Stairs, cat)
	p.PricePerSqFt = quote.PricePerSqFt
	p.TotalSquareFeet = quote.TotalSquareFeet
	p.EstimatedCost = quote.EstimatedCost

	p = applySchedule(p)
	return workflow.MarkQuoted(p), nil
}

// applySchedule re-derives installment amounts for the active policy and
// reconciles the paid totals. Custom schedules keep their amounts.
func applySchedule(p entities.Project) entities.Project {
	amounts := schedule.Derive(p.Schedule, p.EstimatedCost, currentAmounts(p))
	p.Deposit.Amount = amounts.Deposit
	p.Progress.Amount = amounts.Progress
	p.Final.Amount = amounts.Final

	totals := schedule.RecomputeTotals(p.EstimatedCost, p.Deposit, p.Progress, p.Final)
	p.TotalPaid = totals.TotalPaid
	p.BalanceDue = totals.BalanceDue
	return p
}

func currentAmounts(p entities.Project) schedule.Amounts {
	return schedule.Amounts{
		Deposit:  p.Deposit.Amount,
		Progress: p.Progress.Amount,
		Final:    p.Final.Amount,
	}
}
