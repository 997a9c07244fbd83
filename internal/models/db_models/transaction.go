package db_models

import (
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusSuccess   TransactionStatus = "success"
	TxnStatusFailed    TransactionStatus = "failed"
	TxnStatusChallenge TransactionStatus = "challenge"
)

// Transaction is one hosted-checkout session, keyed by the gateway order id.
// Only the Reconciler mutates Status and the gateway echo fields; everything
// written at creation time is immutable afterwards.
type Transaction struct {
	OrderID string `gorm:"primaryKey;size:64"`
	UserID  string `gorm:"index;not null"`

	Amount int64             // gross amount in IDR
	Items  datatypes.JSON    `gorm:"type:jsonb"`
	Status TransactionStatus `gorm:"size:16;index;default:pending"`

	// Opaque values returned by Snap at creation
	GatewayToken string
	RedirectURL  string

	// Set by the Reconciler from verified notifications
	PaymentType     string
	TransactionTime string
	GatewayResponse datatypes.JSON `gorm:"type:jsonb"`

	// Unix seconds
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
