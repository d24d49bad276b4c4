package schedule

import (
	"time"

	"floorcraft/internal/domain/entities"
)

// Amounts holds the three installment amounts derived from a policy.
type Amounts struct {
	Deposit  float64
	Progress float64
	Final    float64
}

// Totals is the reconciled payment state derived from the installment set.
type Totals struct {
	TotalPaid  float64
	BalanceDue float64
}

// Derive computes installment amounts for policy against cost.
//
// The custom policy performs no derivation: it returns current unchanged, so
// switching into custom freezes whatever amounts were already on the project
// as the baseline the contractor can hand-edit. Switching to any built-in
// policy always re-derives fresh amounts.
func Derive(policy entities.SchedulePolicy, cost float64, current Amounts) Amounts {
	switch policy {
	case entities.Schedule603010:
		return Amounts{Deposit: cost * 0.60, Progress: cost * 0.30, Final: cost * 0.10}
	case entities.Schedule5050:
		return Amounts{Deposit: cost * 0.50, Progress: 0, Final: cost * 0.50}
	case entities.Schedule100Upfront:
		return Amounts{Deposit: cost, Progress: 0, Final: 0}
	case entities.ScheduleCustom:
		return current
	}
	return current
}

// MarkPaid records a manual payment against inst.
//
// Idempotent: marking an already-paid installment paid again keeps the
// amount fixed and only refreshes the method and date.
func MarkPaid(inst entities.Installment, method string, when time.Time) entities.Installment {
	inst.Paid = true
	inst.PaymentMethod = method
	inst.PaidDate = &when
	return inst
}

// RecomputeTotals reconciles the installment set into totalPaid/balanceDue.
// Idempotent over the same inputs; never drifts from the installments.
func RecomputeTotals(cost float64, deposit, progress, final entities.Installment) Totals {
	paid := 0.0
	for _, inst := range []entities.Installment{deposit, progress, final} {
		if inst.Paid {
			paid += inst.Amount
		}
	}
	return Totals{TotalPaid: paid, BalanceDue: cost - paid}
}

// CanMarkPaid reports the advisory payment-ordering rule: the progress
// installment should not be paid before the deposit, and the final not
// before a non-zero progress installment. Callers decide whether to enforce
// it as a hard guard.
func CanMarkPaid(kind entities.InstallmentKind, deposit, progress entities.Installment) bool {
	switch kind {
	case entities.InstallmentDeposit:
		return true
	case entities.InstallmentProgress:
		return deposit.Paid
	case entities.InstallmentFinal:
		if progress.Amount > 0 && !progress.Paid {
			return false
		}
		return deposit.Paid
	}
	return false
}
