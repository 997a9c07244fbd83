package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"juarapay/internal/models/db_models"
	"log"
)

func InitPostgresql(dsn string) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Transaction{},
		&db_models.Purchase{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
