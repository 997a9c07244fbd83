package db_models

import (
	"gorm.io/datatypes"
)

// Purchase is the per-user record created once a transaction settles. The
// order id primary key is what makes redelivered notifications a no-op.
type Purchase struct {
	OrderID string `gorm:"primaryKey;size:64"`
	UserID  string `gorm:"index;not null"`

	Amount      int64
	Items       datatypes.JSON `gorm:"type:jsonb"`
	PaymentType string

	// Unix seconds, derived from the gateway's reported transaction time
	PurchaseDate int64

	CreatedAt int64 `gorm:"autoCreateTime"`
}
