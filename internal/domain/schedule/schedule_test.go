package schedule

import (
	"testing"
	"time"

	"floorcraft/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		policy   entities.SchedulePolicy
		cost     float64
		deposit  float64
		progress float64
		final    float64
	}{
		{"60 30 10", entities.Schedule603010, 1563.00, 937.80, 468.90, 156.30},
		{"50 50", entities.Schedule5050, 1563.00, 781.50, 0, 781.50},
		{"100 upfront", entities.Schedule100Upfront, 1563.00, 1563.00, 0, 0},
		{"zero cost", entities.Schedule603010, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.policy, tt.cost, Amounts{})
			assert.InDelta(t, tt.deposit, got.Deposit, 1e-9)
			assert.InDelta(t, tt.progress, got.Progress, 1e-9)
			assert.InDelta(t, tt.final, got.Final, 1e-9)
			assert.InDelta(t, tt.cost, got.Deposit+got.Progress+got.Final, 1e-9)
		})
	}

	t.Run("custom keeps the current amounts", func(t *testing.T) {
		current := Amounts{Deposit: 500, Progress: 400, Final: 663}
		got := Derive(entities.ScheduleCustom, 1563.00, current)
		assert.Equal(t, current, got)
	})

	t.Run("unknown policy keeps the current amounts", func(t *testing.T) {
		current := Amounts{Deposit: 1}
		assert.Equal(t, current, Derive("weekly", 1563.00, current))
	})
}

func TestMarkPaid(t *testing.T) {
	day1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	inst := entities.Installment{Amount: 937.80}
	got := MarkPaid(inst, "check", day1)
	require.True(t, got.Paid)
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, day1, *got.PaidDate)
	assert.Equal(t, "check", got.PaymentMethod)
	assert.InDelta(t, 937.80, got.Amount, 1e-9)

	// Re-marking refreshes method and date but never the amount.
	again := MarkPaid(got, "credit_card", day2)
	assert.True(t, again.Paid)
	assert.Equal(t, day2, *again.PaidDate)
	assert.Equal(t, "credit_card", again.PaymentMethod)
	assert.InDelta(t, 937.80, again.Amount, 1e-9)
}

func TestRecomputeTotals(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	deposit := entities.Installment{Amount: 937.80, Paid: true, PaidDate: &day, PaymentMethod: "check"}
	progress := entities.Installment{Amount: 468.90}
	final := entities.Installment{Amount: 156.30}

	got := RecomputeTotals(1563.00, deposit, progress, final)
	assert.InDelta(t, 937.80, got.TotalPaid, 1e-9)
	assert.InDelta(t, 625.20, got.BalanceDue, 1e-9)

	all := RecomputeTotals(1563.00,
		entities.Installment{Amount: 937.80, Paid: true},
		entities.Installment{Amount: 468.90, Paid: true},
		entities.Installment{Amount: 156.30, Paid: true})
	assert.InDelta(t, 1563.00, all.TotalPaid, 1e-9)
	assert.InDelta(t, 0, all.BalanceDue, 1e-9)
}

func TestCanMarkPaid(t *testing.T) {
	unpaid := entities.Installment{Amount: 100}
	paid := entities.Installment{Amount: 100, Paid: true}

	t.Run("deposit is always payable", func(t *testing.T) {
		assert.True(t, CanMarkPaid(entities.InstallmentDeposit, unpaid, unpaid))
	})

	t.Run("progress needs the deposit paid", func(t *testing.T) {
		assert.False(t, CanMarkPaid(entities.InstallmentProgress, unpaid, unpaid))
		assert.True(t, CanMarkPaid(entities.InstallmentProgress, paid, unpaid))
	})

	t.Run("final needs deposit and progress paid", func(t *testing.T) {
		assert.False(t, CanMarkPaid(entities.InstallmentFinal, paid, unpaid))
		assert.True(t, CanMarkPaid(entities.InstallmentFinal, paid, paid))
	})

	t.Run("final skips a zero-amount progress installment", func(t *testing.T) {
		zero := entities.Installment{}
		assert.True(t, CanMarkPaid(entities.InstallmentFinal, paid, zero))
	})
}
