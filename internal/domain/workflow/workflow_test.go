package workflow

import (
	"testing"
	"time"

	"floorcraft/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkQuoted(t *testing.T) {
	t.Run("draft with a cost becomes quoted", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusDraft, EstimatedCost: 1563.00}
		assert.Equal(t, entities.ProjectStatusQuoted, MarkQuoted(p).Status)
	})

	t.Run("draft without a cost stays draft", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusDraft}
		assert.Equal(t, entities.ProjectStatusDraft, MarkQuoted(p).Status)
	})

	t.Run("later statuses are untouched", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusApproved, EstimatedCost: 100}
		assert.Equal(t, entities.ProjectStatusApproved, MarkQuoted(p).Status)
	})
}

func TestMarkSent(t *testing.T) {
	when := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	t.Run("quoted becomes sent", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusQuoted}
		got := MarkSent(p, when)
		assert.Equal(t, entities.ProjectStatusSent, got.Status)
		assert.Equal(t, 1, got.SendCount)
		require.NotNil(t, got.SentAt)
		assert.Equal(t, when, *got.SentAt)
	})

	t.Run("resending increments the counter without regressing status", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusApproved, SendCount: 2}
		got := MarkSent(p, when)
		assert.Equal(t, entities.ProjectStatusApproved, got.Status)
		assert.Equal(t, 3, got.SendCount)
	})
}

func TestSubmitSignature(t *testing.T) {
	when := time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC)

	t.Run("first signature stays pending approval", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusSent}
		got, err := SubmitSignature(p, entities.PartyCustomer, "sig-customer", when)
		require.NoError(t, err)
		assert.Equal(t, "sig-customer", got.CustomerSignature)
		require.NotNil(t, got.CustomerSignedAt)
		assert.Equal(t, when, *got.CustomerSignedAt)
		assert.Equal(t, entities.ProjectStatusSent, got.Status)
	})

	t.Run("second signature approves", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusSent, CustomerSignature: "sig-customer"}
		got, err := SubmitSignature(p, entities.PartyContractor, "sig-contractor", when)
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusApproved, got.Status)
	})

	t.Run("signing order does not matter", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusQuoted, ContractorSignature: "sig-contractor"}
		got, err := SubmitSignature(p, entities.PartyCustomer, "sig-customer", when)
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusApproved, got.Status)
	})

	t.Run("occupied slot is immutable", func(t *testing.T) {
		signed := time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)
		p := entities.Project{
			Status:            entities.ProjectStatusSent,
			CustomerSignature: "original",
			CustomerSignedAt:  &signed,
		}
		got, err := SubmitSignature(p, entities.PartyCustomer, "forged", when)
		require.ErrorIs(t, err, ErrAlreadySigned)
		assert.Equal(t, "original", got.CustomerSignature)
		assert.Equal(t, signed, *got.CustomerSignedAt)
	})
}

func TestEvaluateApproval(t *testing.T) {
	t.Run("one signature is never enough", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusSent, CustomerSignature: "sig"}
		assert.Equal(t, entities.ProjectStatusSent, EvaluateApproval(p).Status)
	})

	t.Run("both signatures approve from any pre-approval status", func(t *testing.T) {
		for _, status := range []entities.ProjectStatus{
			entities.ProjectStatusDraft,
			entities.ProjectStatusQuoted,
			entities.ProjectStatusSent,
		} {
			p := entities.Project{Status: status, CustomerSignature: "a", ContractorSignature: "b"}
			assert.Equal(t, entities.ProjectStatusApproved, EvaluateApproval(p).Status)
		}
	})

	t.Run("statuses past approved never regress", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusInProgress, CustomerSignature: "a", ContractorSignature: "b"}
		assert.Equal(t, entities.ProjectStatusInProgress, EvaluateApproval(p).Status)
	})
}

func TestStartAndCompleteWork(t *testing.T) {
	t.Run("approved starts", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusApproved}
		assert.Equal(t, entities.ProjectStatusInProgress, StartWork(p).Status)
	})

	t.Run("start is a no-op before approval", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusSent}
		assert.Equal(t, entities.ProjectStatusSent, StartWork(p).Status)
	})

	t.Run("in progress completes", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusInProgress}
		assert.Equal(t, entities.ProjectStatusCompleted, CompleteWork(p).Status)
	})

	t.Run("complete is a no-op before work starts", func(t *testing.T) {
		p := entities.Project{Status: entities.ProjectStatusApproved}
		assert.Equal(t, entities.ProjectStatusApproved, CompleteWork(p).Status)
	})
}
