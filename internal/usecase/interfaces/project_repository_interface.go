package interfaces

import (
	"context"
	"time"

	"floorcraft/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Write discipline:
//   - Save persists the whole aggregate after a recompute; derived totals are
//     unconditional writes.
//   - SetSignature must be a conditional write (slot must be empty) so the
//     already-signed guard is race-free, not a read-then-write. It returns a
//     zero Project when the condition fails.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Project, error)
	Save(ctx context.Context, p entities.Project) (entities.Project, error)
	SetSignature(ctx context.Context, id string, party entities.SignatureParty, blob string, signedAt time.Time) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
}
