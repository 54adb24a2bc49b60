package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/request_models"
	"gymflow/internal/models/response_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/memcache"
	"gymflow/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
	resetTokens memcache.ResetTokenStore
	mail        IMailService
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	resetTokens memcache.ResetTokenStore,
	mail IMailService,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mail:        mail,
		logger:      logger,
	}
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         "staff",
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// ForgotPassword issues a single-use token and mails a reset link. A missing
// account is treated as success so the endpoint does not leak which emails
// have accounts.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		s.logger.Info("password reset requested for unknown email")
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	s.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := s.mail.SendMailToResetPassword(account.Email, token); err != nil {
		s.logger.Error("failed to send reset mail", zap.Error(err))
		return err
	}
	return nil
}

func (s *AccountService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	email := s.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	account.PasswordHash = hashedPassword
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}
