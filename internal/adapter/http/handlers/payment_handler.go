package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "floorcraft/internal/adapter/http/dto/request"
	response "floorcraft/internal/adapter/http/dto/response"
	"floorcraft/internal/domain/entities"
	"floorcraft/internal/usecase"
	"floorcraft/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment-schedule routes: policy changes,
// custom amount edits, offline mark-paid, and the optional online
// collection of an installment.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) ChangeSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.ChangeSchedulePolicy(c.Request.Context(), c.Param("id"), entities.SchedulePolicy(payload.Policy))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *PaymentHandler) UpdateInstallments(c *gin.Context) {
	var payload request.InstallmentAmountsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateInstallmentAmounts(c.Request.Context(), c.Param("id"), payload.Deposit, payload.Progress, payload.Final)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

// MarkPaid records an offline payment (check, cash, ...) against one
// installment.
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	var payload request.MarkPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	kind := entities.InstallmentKind(c.Param("kind"))
	p, err := h.usecase.MarkInstallmentPaid(c.Request.Context(), c.Param("id"), kind, payload.Method, payload.ResolvePaidDate())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

// Collect charges an unpaid installment through the payment gateway. The
// body is forwarded to the provider as-is; the amount always comes from the
// schedule.
func (h *PaymentHandler) Collect(c *gin.Context) {
	id := c.Param("id")
	kind := entities.InstallmentKind(c.Param("kind"))
	log.Printf("[payment][handler] collect start project_id=%s kind=%s", id, kind)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload project_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.CollectInstallmentOnline(c.Request.Context(), id, kind, payload)
	if err != nil {
		log.Printf("[payment][handler] collect failed project_id=%s kind=%s err=%v", id, kind, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] collect success project_id=%s kind=%s total_paid=%.2f", id, kind, p.TotalPaid)

	c.JSON(http.StatusOK, response.FromProject(p))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidSchedulePolicy),
		errors.Is(err, usecase.ErrInvalidInstallmentKind),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidInstallmentAmount),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduleNotCustom):
		return pkg.NewDomainErrorSimple("SCHEDULE_NOT_CUSTOM", "Installment amounts are derived from the schedule; switch to custom first", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentOutOfOrder):
		return pkg.NewDomainErrorSimple("PAYMENT_OUT_OF_ORDER", "Earlier installments must be paid first", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
