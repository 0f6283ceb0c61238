package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	appconfig "atelie_crm/internal/infrastructure/config"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway collects receivable entries through Mercado Pago. It is
// optional infrastructure: when no access token is configured the session
// settles entries without contacting any provider.
type MercadoPagoGateway struct {
	client payment.Client
	log    *logrus.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := appconfig.GetLogger()

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		appconfig.LogError(log, "payments", "NewMercadoPagoGateway", "creating sdk config", nil, err)
		return nil, err
	}

	log.Info("Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		appconfig.LogError(g.log, "payments", "CreatePayment", "unmarshaling request payload", nil, err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		appconfig.LogError(g.log, "payments", "CreatePayment", "calling sdk create", nil, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.log.WithFields(logrus.Fields{
		"module":              "payments",
		"provider_payment_id": resp.ID,
		"provider_status":     resp.Status,
	}).Info("payment created")
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}
