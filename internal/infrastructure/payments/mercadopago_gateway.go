package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"isp_backoffice/internal/infrastructure/config"
	"isp_backoffice/internal/infrastructure/logger"

	"github.com/cockroachdb/errors"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// maxStatementDescriptor is the longest descriptor card issuers print on statements.
const maxStatementDescriptor = 22

// MercadoPagoGateway creates card and cash payments for client charges. Every
// request carries the ISP's statement descriptor and notification URL unless
// the caller set them.
type MercadoPagoGateway struct {
	client              payment.Client
	mockMode            bool
	statementDescriptor string
	notificationURL     string
}

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{
		mockMode:            cfg.Mock,
		statementDescriptor: truncateDescriptor(cfg.StatementDescriptor),
		notificationURL:     strings.TrimSpace(cfg.NotificationURL),
	}
	if cfg.Mock {
		logger.L.Infof("[payment][gateway] mock mode enabled")
		return g, nil
	}

	if cfg.AccessToken == "" {
		logger.L.Warnf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		logger.L.Errorf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	logger.L.Infof("[payment][gateway] Mercado Pago client initialized sandbox=%t descriptor=%q", cfg.Sandbox(), g.statementDescriptor)

	g.client = payment.NewClient(sdkCfg)
	return g, nil
}

func truncateDescriptor(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > maxStatementDescriptor {
		s = s[:maxStatementDescriptor]
	}
	return s
}

// applyDefaults fills the ISP defaults the caller left empty and tags the
// payment metadata with the charge it settles.
func (g *MercadoPagoGateway) applyDefaults(req *payment.Request) {
	if req.StatementDescriptor == "" {
		req.StatementDescriptor = g.statementDescriptor
	}
	if req.NotificationURL == "" {
		req.NotificationURL = g.notificationURL
	}
	if req.ExternalReference != "" {
		if req.Metadata == nil {
			req.Metadata = map[string]any{}
		}
		if _, ok := req.Metadata["charge_id"]; !ok {
			req.Metadata["charge_id"] = req.ExternalReference
		}
	}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.createMockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		logger.L.Errorf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	logger.L.Infof("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		logger.L.Errorf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}
	g.applyDefaults(&req)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.L.Errorf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.L.Errorf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	logger.L.Infof("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// createMockPayment echoes the request back as an approved payment.
func (g *MercadoPagoGateway) createMockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	logger.L.Infof("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}
	if _, ok := resp["statement_descriptor"]; !ok && g.statementDescriptor != "" {
		resp["statement_descriptor"] = g.statementDescriptor
	}
	if _, ok := resp["notification_url"]; !ok && g.notificationURL != "" {
		resp["notification_url"] = g.notificationURL
	}
	if ref, ok := resp["external_reference"].(string); ok && ref != "" {
		meta, _ := resp["metadata"].(map[string]any)
		if meta == nil {
			meta = map[string]any{}
		}
		if _, ok := meta["charge_id"]; !ok {
			meta["charge_id"] = ref
		}
		resp["metadata"] = meta
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.L.Errorf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	logger.L.Infof("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
