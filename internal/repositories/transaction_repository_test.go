package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"juarapay/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&db_models.Transaction{}, &db_models.Purchase{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTransaction(t *testing.T, repo TransactionRepositoryInterface, orderID string) {
	t.Helper()
	err := repo.CreateTransaction(&db_models.Transaction{
		OrderID: orderID,
		UserID:  "U1",
		Amount:  150000,
		Items:   []byte(`[{"id":"CPNS-BASIC","price":150000,"qty":1}]`),
		Status:  db_models.TxnStatusPending,
	}, context.Background())
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
}

func successUpdate() NotificationUpdate {
	return NotificationUpdate{
		Status:          db_models.TxnStatusSuccess,
		PaymentType:     "bank_transfer",
		TransactionTime: "2024-01-01 10:00:00",
		GatewayResponse: []byte(`{"transaction_status":"settlement"}`),
	}
}

func TestApplyNotificationPersistsUpdateAndPurchase(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	seedTransaction(t, repo, "ORDER-1")

	purchase := &db_models.Purchase{
		OrderID:      "ORDER-1",
		UserID:       "U1",
		Amount:       150000,
		Items:        []byte(`[{"id":"CPNS-BASIC"}]`),
		PaymentType:  "bank_transfer",
		PurchaseDate: 1704074400,
	}
	if err := repo.ApplyNotification("ORDER-1", successUpdate(), purchase, context.Background()); err != nil {
		t.Fatalf("apply notification: %v", err)
	}

	txn, err := repo.GetByOrderID("ORDER-1", context.Background())
	if err != nil || txn == nil {
		t.Fatalf("reload transaction: %v", err)
	}
	if txn.Status != db_models.TxnStatusSuccess {
		t.Errorf("expected success status, got %s", txn.Status)
	}
	if txn.PaymentType != "bank_transfer" || txn.TransactionTime != "2024-01-01 10:00:00" {
		t.Errorf("notification fields not persisted: %+v", txn)
	}
	if txn.UserID != "U1" || txn.Amount != 150000 {
		t.Errorf("creation-time fields must not change: %+v", txn)
	}
}

func TestApplyNotificationPurchaseInsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	seedTransaction(t, repo, "ORDER-1")

	first := &db_models.Purchase{
		OrderID:      "ORDER-1",
		UserID:       "U1",
		Amount:       150000,
		PaymentType:  "bank_transfer",
		PurchaseDate: 1704074400,
	}
	if err := repo.ApplyNotification("ORDER-1", successUpdate(), first, context.Background()); err != nil {
		t.Fatalf("first delivery: %v", err)
	}

	// Redelivery carries a different derived purchase date; the insert must
	// neither fail nor touch the existing row.
	redelivered := &db_models.Purchase{
		OrderID:      "ORDER-1",
		UserID:       "U1",
		Amount:       150000,
		PaymentType:  "bank_transfer",
		PurchaseDate: 1704999999,
	}
	if err := repo.ApplyNotification("ORDER-1", successUpdate(), redelivered, context.Background()); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	var count int64
	if err := db.Model(&db_models.Purchase{}).Count(&count).Error; err != nil {
		t.Fatalf("count purchases: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one purchase row, got %d", count)
	}

	var stored db_models.Purchase
	if err := db.Where("order_id = ?", "ORDER-1").First(&stored).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if stored.PurchaseDate != 1704074400 {
		t.Errorf("redelivery overwrote purchase date: %d", stored.PurchaseDate)
	}
}

func TestApplyNotificationUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	err := repo.ApplyNotification("ORDER-MISSING", successUpdate(), nil, context.Background())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&db_models.Purchase{}).Count(&count).Error; err != nil {
		t.Fatalf("count purchases: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no purchase rows, got %d", count)
	}
}

func TestGetByOrderIDAbsent(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))

	txn, err := repo.GetByOrderID("ORDER-MISSING", context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn != nil {
		t.Fatalf("expected nil for absent order, got %+v", txn)
	}
}
