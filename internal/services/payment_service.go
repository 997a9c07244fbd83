package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"gorm.io/gorm"
	"juarapay/internal/gateway"
	"juarapay/internal/models/db_models"
	"juarapay/internal/models/request_models"
	"juarapay/internal/models/response_models"
	"juarapay/internal/repositories"
	"juarapay/pkg/utils"
)

type PaymentServiceInterface interface {
	CreateTransaction(userID string, req request_models.CreateTransactionRequest, ctx context.Context) (*response_models.CreateTransactionResponse, error)
	ProcessNotification(payload []byte, ctx context.Context) error
}

type PaymentService struct {
	txnRepo repositories.TransactionRepositoryInterface
	gateway gateway.Client
}

func NewPaymentService(txnRepo repositories.TransactionRepositoryInterface, gatewayClient gateway.Client) PaymentServiceInterface {
	return &PaymentService{
		txnRepo: txnRepo,
		gateway: gatewayClient,
	}
}

func (p *PaymentService) CreateTransaction(userID string, req request_models.CreateTransactionRequest, ctx context.Context) (*response_models.CreateTransactionResponse, error) {
	orderID := utils.NewOrderID()

	items := make([]gateway.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, gateway.CheckoutItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Qty:   item.Qty,
		})
	}

	session, err := p.gateway.CreateHostedTransaction(ctx, gateway.CheckoutRequest{
		OrderID:     orderID,
		GrossAmount: req.Amount,
		FirstName:   req.FirstName,
		Email:       req.Email,
		Phone:       req.Phone,
		Items:       items,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items for %s: %w", orderID, err)
	}

	txn := &db_models.Transaction{
		OrderID:      orderID,
		UserID:       userID,
		Amount:       req.Amount,
		Items:        itemsJSON,
		Status:       db_models.TxnStatusPending,
		GatewayToken: session.Token,
		RedirectURL:  session.RedirectURL,
	}

	if err := p.txnRepo.CreateTransaction(txn, ctx); err != nil {
		log.Printf("create transaction %s: %v", orderID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateTransactionResponse{
		Token:       session.Token,
		RedirectURL: session.RedirectURL,
		OrderID:     orderID,
	}, nil
}

// ProcessNotification reconciles one gateway status push: verify against the
// gateway, load the local record, map the reported status pair and apply the
// update, creating the purchase record when the payment succeeded.
func (p *PaymentService) ProcessNotification(payload []byte, ctx context.Context) error {
	notif, err := p.gateway.VerifyNotification(ctx, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}

	log.Printf("notification received: order=%s transaction_status=%s fraud_status=%s",
		notif.OrderID, notif.TransactionStatus, notif.FraudStatus)

	txn, err := p.txnRepo.GetByOrderID(notif.OrderID, ctx)
	if err != nil {
		log.Printf("load transaction %s: %v", notif.OrderID, err)
		return utils.ErrDatabaseError
	}
	if txn == nil {
		return utils.ErrTransactionNotFound
	}

	status, ok := mapGatewayStatus(notif.TransactionStatus, notif.FraudStatus)
	if !ok {
		return fmt.Errorf("%w: transaction_status=%q fraud_status=%q",
			utils.ErrUnknownGatewayStatus, notif.TransactionStatus, notif.FraudStatus)
	}

	var purchase *db_models.Purchase
	if status == db_models.TxnStatusSuccess {
		purchaseDate := utils.ParseGatewayTime(notif.TransactionTime)
		if purchaseDate.IsZero() {
			log.Printf("unparseable transaction_time %q for order %s, using current time",
				notif.TransactionTime, notif.OrderID)
			purchaseDate = utils.FromUnixSecondsWIB(utils.NowUnixSeconds())
		}

		purchase = &db_models.Purchase{
			OrderID:      txn.OrderID,
			UserID:       txn.UserID,
			Amount:       txn.Amount,
			Items:        txn.Items,
			PaymentType:  notif.PaymentType,
			PurchaseDate: purchaseDate.Unix(),
		}
	}

	update := repositories.NotificationUpdate{
		Status:          status,
		PaymentType:     notif.PaymentType,
		TransactionTime: notif.TransactionTime,
		GatewayResponse: notif.Raw,
	}

	if err := p.txnRepo.ApplyNotification(txn.OrderID, update, purchase, ctx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTransactionNotFound
		}
		log.Printf("apply notification for %s: %v", txn.OrderID, err)
		return utils.ErrDatabaseError
	}

	log.Printf("notification processed: order=%s status=%s", txn.OrderID, status)
	return nil
}

// mapGatewayStatus translates the gateway's (transaction_status, fraud_status)
// pair into the stored status. The second return is false for pairs the
// service does not recognize; callers must treat that as a processing error
// rather than persisting anything.
func mapGatewayStatus(transactionStatus, fraudStatus string) (db_models.TransactionStatus, bool) {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "challenge":
			return db_models.TxnStatusChallenge, true
		case "accept":
			return db_models.TxnStatusSuccess, true
		}
		return "", false
	case "settlement":
		return db_models.TxnStatusSuccess, true
	case "cancel", "deny", "expire":
		return db_models.TxnStatusFailed, true
	case "pending":
		return db_models.TxnStatusPending, true
	}
	return "", false
}
