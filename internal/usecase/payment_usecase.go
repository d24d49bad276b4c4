package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"floorcraft/internal/domain/entities"
	"floorcraft/internal/domain/schedule"
	"floorcraft/internal/usecase/interfaces"
)

var (
	ErrInvalidSchedulePolicy      = errors.New("invalid payment schedule policy")
	ErrInvalidInstallmentKind     = errors.New("invalid installment kind")
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrInvalidInstallmentAmount   = errors.New("invalid installment amount")
	ErrScheduleNotCustom          = errors.New("installment amounts are derived; switch the schedule to custom first")
	ErrPaymentOutOfOrder          = errors.New("installment paid out of order")
	ErrInstallmentAlreadyPaid     = errors.New("installment already paid")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase covers the payment-schedule side of a project:
//   - policy changes re-derive installment amounts (custom freezes them)
//   - offline payments are recorded manually and idempotently
//   - online collection goes through the payment gateway and records the
//     approved payment the same way
type IPaymentUseCase interface {
	ChangeSchedulePolicy(ctx context.Context, id string, policy entities.SchedulePolicy) (entities.Project, error)
	UpdateInstallmentAmounts(ctx context.Context, id string, deposit, progress, final float64) (entities.Project, error)
	MarkInstallmentPaid(ctx context.Context, id string, kind entities.InstallmentKind, method string, when time.Time) (entities.Project, error)
	CollectInstallmentOnline(ctx context.Context, id string, kind entities.InstallmentKind, payload json.RawMessage) (entities.Project, error)
}

type PaymentUseCase struct {
	repo    interfaces.IProjectRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IProjectRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) ChangeSchedulePolicy(ctx context.Context, id string, policy entities.SchedulePolicy) (entities.Project, error) {
	if !entities.ValidSchedulePolicy(policy) {
		return entities.Project{}, ErrInvalidSchedulePolicy
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	p.Schedule = policy
	p = applySchedule(p)
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}

// UpdateInstallmentAmounts hand-edits the three amounts. Only meaningful for
// the custom policy; built-in policies always re-derive and would clobber
// the edit on the next recompute.
func (u *PaymentUseCase) UpdateInstallmentAmounts(ctx context.Context, id string, deposit, progress, final float64) (entities.Project, error) {
	if deposit < 0 || progress < 0 || final < 0 {
		return entities.Project{}, ErrInvalidInstallmentAmount
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Schedule != entities.ScheduleCustom {
		return entities.Project{}, ErrScheduleNotCustom
	}

	p.Deposit.Amount = deposit
	p.Progress.Amount = progress
	p.Final.Amount = final

	totals := schedule.RecomputeTotals(p.EstimatedCost, p.Deposit, p.Progress, p.Final)
	p.TotalPaid = totals.TotalPaid
	p.BalanceDue = totals.BalanceDue
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}

func (u *PaymentUseCase) MarkInstallmentPaid(ctx context.Context, id string, kind entities.InstallmentKind, method string, when time.Time) (entities.Project, error) {
	if !entities.ValidInstallmentKind(kind) {
		return entities.Project{}, ErrInvalidInstallmentKind
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return entities.Project{}, ErrInvalidPaymentMethod
	}
	if when.IsZero() {
		when = time.Now().UTC()
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	return u.recordPayment(ctx, p, kind, method, when)
}

// CollectInstallmentOnline charges an unpaid installment through the
// payment gateway and records the approved payment. The amount charged is
// always the installment amount from the schedule, never the caller payload.
func (u *PaymentUseCase) CollectInstallmentOnline(ctx context.Context, id string, kind entities.InstallmentKind, payload json.RawMessage) (entities.Project, error) {
	log.Printf("[payment][usecase] collect start project_id=%s kind=%s payload_len=%d", id, kind, len(payload))
	if !entities.ValidInstallmentKind(kind) {
		return entities.Project{}, ErrInvalidInstallmentKind
	}
	mockMode := isPaymentGatewayMockEnabled()
	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured project_id=%s", id)
		return entities.Project{}, errors.New("payment gateway not configured")
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	inst := p.Installment(kind)
	if inst.Paid {
		log.Printf("[payment][usecase] installment already paid project_id=%s kind=%s", p.ID, kind)
		return entities.Project{}, ErrInstallmentAlreadyPaid
	}
	if !schedule.CanMarkPaid(kind, p.Deposit, p.Progress) {
		return entities.Project{}, ErrPaymentOutOfOrder
	}

	// The source of truth for the amount is the schedule on the project.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		reqMap = map[string]any{}
	}
	reqMap["transaction_amount"] = inst.Amount
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s/%s", p.ID, kind)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Flooring project %s, %s installment", p.ID, kind)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Project{}, err
	}

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping payment gateway project_id=%s kind=%s", p.ID, kind)
	} else {
		providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed project_id=%s kind=%s err=%v", p.ID, kind, err)
			if isGatewayUnauthorized(err) {
				return entities.Project{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Project{}, ErrPaymentGatewayBadRequest
			}
			return entities.Project{}, err
		}
		log.Printf("[payment][usecase] payment gateway success project_id=%s kind=%s provider_payment_id=%s provider_status=%s", p.ID, kind, providerPaymentID, providerStatus)
	}

	return u.recordPayment(ctx, p, kind, "mercadopago", time.Now().UTC())
}

func (u *PaymentUseCase) recordPayment(ctx context.Context, p entities.Project, kind entities.InstallmentKind, method string, when time.Time) (entities.Project, error) {
	inst := p.Installment(kind)
	if !inst.Paid && !schedule.CanMarkPaid(kind, p.Deposit, p.Progress) {
		return entities.Project{}, ErrPaymentOutOfOrder
	}

	p.SetInstallment(kind, schedule.MarkPaid(inst, method, when))

	totals := schedule.RecomputeTotals(p.EstimatedCost, p.Deposit, p.Progress, p.Final)
	p.TotalPaid = totals.TotalPaid
	p.BalanceDue = totals.BalanceDue
	p.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] save failed project_id=%s kind=%s err=%v", p.ID, kind, err)
		return entities.Project{}, err
	}
	log.Printf("[payment][usecase] payment recorded project_id=%s kind=%s method=%s total_paid=%.2f balance_due=%.2f", saved.ID, kind, method, saved.TotalPaid, saved.BalanceDue)
	return saved, nil
}

func (u *PaymentUseCase) load(ctx context.Context, id string) (entities.Project, error) {
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

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
