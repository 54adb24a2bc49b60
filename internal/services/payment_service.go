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
	"gymflow/pkg/rules"
	"gymflow/pkg/utils"
)

type PaymentServiceInterface interface {
	RecordPayment(ctx context.Context, req request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error)
	ListPayments(ctx context.Context, memberID *uuid.UUID, method string) ([]response_models.PaymentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TxnStatus) (*response_models.PaymentResponse, error)
	RevenueStats(ctx context.Context) (*response_models.RevenueStats, error)
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepositoryInterface
	memberRepo  repositories.MemberRepositoryInterface
	planRepo    repositories.PlanRepositoryInterface
	logger      *zap.Logger
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	planRepo repositories.PlanRepositoryInterface,
	logger *zap.Logger,
) PaymentServiceInterface {
	return &PaymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

// RecordPayment writes one charge. Cash is settled at the counter, so it is
// recorded paid immediately; stripe and mpesa rows start pending until the
// external processor confirms and staff update the status.
func (s *PaymentService) RecordPayment(ctx context.Context, req request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error) {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, utils.ValidationError("member_id")
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, utils.ValidationError("plan_id")
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	amount := rules.PlanAmount(plan.Price, member.PlanType)
	if req.Amount != nil {
		amount = *req.Amount
	}

	payment := &db_models.Payment{
		MemberID: member.ID,
		PlanID:   plan.ID,
		Amount:   amount,
		Currency: plan.Currency,
		Method:   db_models.PaymentMethod(req.Method),
		Status:   db_models.TxnPending,
		Notes:    req.Notes,
	}
	if payment.Method == db_models.MethodCash {
		now := utils.NowUnixSeconds()
		payment.Status = db_models.TxnPaid
		payment.PaidAt = &now
	}

	if err := s.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if payment.Status == db_models.TxnPaid {
		if err := s.settleMember(ctx, member); err != nil {
			return nil, err
		}
	}

	s.logger.Info("payment recorded",
		zap.String("member_id", member.ID.String()),
		zap.Int64("amount", amount),
		zap.String("method", req.Method),
		zap.String("status", string(payment.Status)))

	payment.Member = *member
	payment.Plan = *plan
	resp := toPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, memberID *uuid.UUID, method string) ([]response_models.PaymentResponse, error) {
	payments, err := s.paymentRepo.Find(ctx, repositories.PaymentFilter{MemberID: memberID, Method: method})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, toPaymentResponse(&payments[i]))
	}
	return responses, nil
}

func (s *PaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TxnStatus) (*response_models.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}

	becamePaid := status == db_models.TxnPaid && payment.Status != db_models.TxnPaid
	payment.Status = status
	if becamePaid {
		now := utils.NowUnixSeconds()
		payment.PaidAt = &now
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if becamePaid {
		member, err := s.memberRepo.FindByID(ctx, payment.MemberID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if member != nil {
			if err := s.settleMember(ctx, member); err != nil {
				return nil, err
			}
		}
	}

	resp := toPaymentResponse(payment)
	return &resp, nil
}

// settleMember flips the member's payment status to paid and advances the
// due date one billing period, from the current due date if set, otherwise
// from today.
func (s *PaymentService) settleMember(ctx context.Context, member *db_models.Member) error {
	member.PaymentStatus = db_models.PaymentPaid

	base := member.PaymentDueDate
	if _, ok := rules.ParseDay(base); !ok {
		base = utils.TodayLocal()
	}
	if nextDue, err := rules.PlanEndDate(base, member.PlanType); err == nil {
		member.PaymentDueDate = nextDue
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PaymentService) RevenueStats(ctx context.Context) (*response_models.RevenueStats, error) {
	now := time.Now()

	today, err := s.paymentRepo.SumPaidSince(ctx, utils.StartOfDay(now).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	week, err := s.paymentRepo.SumPaidSince(ctx, utils.StartOfWeek(now).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	month, err := s.paymentRepo.SumPaidSince(ctx, utils.StartOfMonth(now).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	allTime, err := s.paymentRepo.SumPaidSince(ctx, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byMethod, err := s.paymentRepo.SumPaidByMethod(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RevenueStats{
		Revenue: response_models.RevenueWindows{
			Today:   today,
			Week:    week,
			Month:   month,
			AllTime: allTime,
		},
		RevenueByMethod: response_models.RevenueByMethod{
			Cash:   byMethod[db_models.MethodCash].Amount,
			Stripe: byMethod[db_models.MethodStripe].Amount,
			Mpesa:  byMethod[db_models.MethodMpesa].Amount,
		},
		PaymentCountsByMethod: response_models.MethodCounts{
			Cash:   byMethod[db_models.MethodCash].Count,
			Stripe: byMethod[db_models.MethodStripe].Count,
			Mpesa:  byMethod[db_models.MethodMpesa].Count,
		},
	}, nil
}

func toPaymentResponse(payment *db_models.Payment) response_models.PaymentResponse {
	return response_models.PaymentResponse{
		ID:         payment.ID,
		MemberID:   payment.MemberID,
		MemberName: payment.Member.Name(),
		PlanID:     payment.PlanID,
		PlanName:   payment.Plan.Name,
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		Method:     string(payment.Method),
		Status:     string(payment.Status),
		PaidAt:     payment.PaidAt,
		Notes:      payment.Notes,
		CreatedAt:  payment.CreatedAt,
	}
}
