package payment_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, providePaymentService)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepositoryInterface {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	paymentRepo repositories.PaymentRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	planRepo repositories.PlanRepositoryInterface,
	logger *zap.Logger,
) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, memberRepo, planRepo, logger)
}
