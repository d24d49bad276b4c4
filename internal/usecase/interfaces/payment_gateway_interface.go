package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago)
// used for the optional online collection of an installment.
//
// Offline methods (check, cash) remain the primary path; the gateway is only
// invoked when the contractor collects an installment online, and the provider
// response payload is kept for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
