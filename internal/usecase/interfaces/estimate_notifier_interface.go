package interfaces

import (
	"context"

	"floorcraft/internal/domain/entities"
)

// IEstimateNotifier dispatches the send-estimate event to the delivery
// collaborator (email/PDF rendering lives outside this service). The engine
// only emits the recomputed project snapshot; delivery failures do not roll
// back the status transition.
type IEstimateNotifier interface {
	NotifyEstimateSent(ctx context.Context, p entities.Project) error
}
