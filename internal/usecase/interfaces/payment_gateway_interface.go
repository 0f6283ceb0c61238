package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The CRM consults it, when configured, while settling a receivable entry:
// the provider payment id is recorded on the entry for traceability. The
// gateway is optional; without one the settle is purely local.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
