package services

import (
	"context"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/request_models"
	"gymflow/internal/models/response_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
}

type PlanService struct {
	planRepo repositories.PlanRepositoryInterface
}

func NewPlanService(planRepo repositories.PlanRepositoryInterface) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) ListPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, toPlanResponse(&plans[i]))
	}
	return responses, nil
}

func (s *PlanService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}

	plan := &db_models.Plan{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     currency,
		DurationDays: req.DurationDays,
		IsActive:     true,
	}
	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPlanResponse(plan)
	return &resp, nil
}

func toPlanResponse(plan *db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:           plan.ID,
		Code:         plan.Code,
		Name:         plan.Name,
		Description:  plan.Description,
		Price:        plan.Price,
		Currency:     plan.Currency,
		DurationDays: plan.DurationDays,
		IsActive:     plan.IsActive,
	}
}
