package repositories

import (
	"context"
	"errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"juarapay/internal/models/db_models"
)

// NotificationUpdate is the field-level merge the reconciler applies to a
// transaction row; never a whole-row overwrite.
type NotificationUpdate struct {
	Status          db_models.TransactionStatus
	PaymentType     string
	TransactionTime string
	GatewayResponse datatypes.JSON
}

type TransactionRepositoryInterface interface {
	CreateTransaction(txn *db_models.Transaction, ctx context.Context) error
	GetByOrderID(orderID string, ctx context.Context) (*db_models.Transaction, error)
	ApplyNotification(orderID string, update NotificationUpdate, purchase *db_models.Purchase, ctx context.Context) error
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (t *TransactionRepository) CreateTransaction(txn *db_models.Transaction, ctx context.Context) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *TransactionRepository) GetByOrderID(orderID string, ctx context.Context) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).Where("order_id = ?", orderID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// ApplyNotification updates the transaction row and, when a purchase is
// passed, inserts it in the same database transaction. The purchase insert is
// create-if-absent on the order id key, so redelivered notifications cannot
// duplicate it.
func (t *TransactionRepository) ApplyNotification(orderID string, update NotificationUpdate, purchase *db_models.Purchase, ctx context.Context) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db_models.Transaction{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"status":           update.Status,
				"payment_type":     update.PaymentType,
				"transaction_time": update.TransactionTime,
				"gateway_response": update.GatewayResponse,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if purchase != nil {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(purchase).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
