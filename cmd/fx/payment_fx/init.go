package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"juarapay/internal/api/controllers"
	"juarapay/internal/config"
	"juarapay/internal/gateway"
	"juarapay/internal/repositories"
	"juarapay/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, providePaymentService, providePaymentController,
)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func providePaymentService(txnRepo repositories.TransactionRepositoryInterface, gatewayClient gateway.Client) services.PaymentServiceInterface {
	return services.NewPaymentService(txnRepo, gatewayClient)
}

func providePaymentController(paymentService services.PaymentServiceInterface, cfg config.Config) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService, cfg)
}
