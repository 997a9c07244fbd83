package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"juarapay/internal/config"
)

// MidtransClient talks to Midtrans through the Snap API for checkout creation
// and the Core API for notification verification.
type MidtransClient struct {
	snap      snap.Client
	core      coreapi.Client
	finishURL string
}

func NewMidtransClient(cfg config.MidtransConfig, payment config.PaymentConfig) *MidtransClient {
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}

	client := &MidtransClient{finishURL: payment.FinishURL}
	client.snap.New(cfg.ServerKey, env)
	client.core.New(cfg.ServerKey, env)
	return client
}

func (m *MidtransClient) CreateHostedTransaction(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FirstName,
			Email: req.Email,
			Phone: req.Phone,
		},
		Items: &items,
		Callbacks: &snap.Callbacks{
			Finish: m.finishURL,
		},
	}

	resp, err := m.snap.CreateTransaction(snapReq)
	if err != nil {
		return nil, fmt.Errorf("snap create transaction for %s: %w", req.OrderID, err)
	}

	return &CheckoutSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (m *MidtransClient) VerifyNotification(ctx context.Context, payload []byte) (*Notification, error) {
	orderID, err := orderIDFromPayload(payload)
	if err != nil {
		return nil, err
	}

	// The status lookup runs over the key-authenticated API, so a successful
	// response proves the notification refers to a real gateway transaction.
	status, apiErr := m.core.CheckTransaction(orderID)
	if apiErr != nil {
		return nil, fmt.Errorf("check transaction %s: %w", orderID, apiErr)
	}
	if status.OrderID == "" {
		return nil, fmt.Errorf("gateway returned no transaction for order %s", orderID)
	}

	raw, marshalErr := json.Marshal(status)
	if marshalErr != nil {
		return nil, fmt.Errorf("encode gateway response for %s: %w", orderID, marshalErr)
	}

	return &Notification{
		OrderID:           status.OrderID,
		TransactionStatus: status.TransactionStatus,
		FraudStatus:       status.FraudStatus,
		PaymentType:       status.PaymentType,
		TransactionTime:   status.TransactionTime,
		Raw:               raw,
	}, nil
}

func orderIDFromPayload(payload []byte) (string, error) {
	var body struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", fmt.Errorf("decode notification payload: %w", err)
	}
	if body.OrderID == "" {
		return "", fmt.Errorf("notification payload missing order_id")
	}
	return body.OrderID, nil
}
