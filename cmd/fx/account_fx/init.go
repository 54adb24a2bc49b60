package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
	mem "gymflow/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	resetTokens mem.ResetTokenStore,
	mailService services.IMailService,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService, logger)
}
