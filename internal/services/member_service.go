package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/request_models"
	"gymflow/internal/models/response_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/rules"
	"gymflow/pkg/utils"
)

const recentWorkoutLimit = 10

type MemberServiceInterface interface {
	CreateMember(ctx context.Context, req request_models.MemberRequest) (*response_models.MemberResponse, error)
	UpdateMember(ctx context.Context, id uuid.UUID, req request_models.MemberRequest) (*response_models.MemberResponse, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	GetMember(ctx context.Context, id uuid.UUID) (*response_models.MemberResponse, error)
	ListMembers(ctx context.Context) ([]response_models.MemberResponse, error)
}

type MemberService struct {
	memberRepo  repositories.MemberRepositoryInterface
	planRepo    repositories.PlanRepositoryInterface
	checkInRepo repositories.CheckInRepositoryInterface
	workoutRepo repositories.WorkoutRepositoryInterface
}

func NewMemberService(
	memberRepo repositories.MemberRepositoryInterface,
	planRepo repositories.PlanRepositoryInterface,
	checkInRepo repositories.CheckInRepositoryInterface,
	workoutRepo repositories.WorkoutRepositoryInterface,
) MemberServiceInterface {
	return &MemberService{
		memberRepo:  memberRepo,
		planRepo:    planRepo,
		checkInRepo: checkInRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *MemberService) CreateMember(ctx context.Context, req request_models.MemberRequest) (*response_models.MemberResponse, error) {
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%w: plan_id is not a valid id", utils.ErrValidation)
	}
	if _, ok := rules.ParseDay(req.StartDate); !ok {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrValidation)
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	member := &db_models.Member{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		PlanID:         plan.ID,
		PlanType:       rules.PlanType(req.PlanType),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PaymentDueDate: req.PaymentDueDate,
		PaymentStatus:  db_models.PaymentPending,
	}
	if err := s.deriveFields(member, plan, req.PaymentAmount, true); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	member.Plan = *plan
	resp := s.toResponse(member, utils.TodayLocal(), nil)
	return &resp, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, id uuid.UUID, req request_models.MemberRequest) (*response_models.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%w: plan_id is not a valid id", utils.ErrValidation)
	}
	if _, ok := rules.ParseDay(req.StartDate); !ok {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrValidation)
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	// End date and payment amount are plan-derived fields: any change to
	// start date, plan or plan type recomputes them, silently replacing a
	// manually edited value. Known quirk, kept as-is.
	dependentChanged := member.StartDate != req.StartDate ||
		member.PlanID != plan.ID ||
		member.PlanType != rules.PlanType(req.PlanType)

	member.FirstName = req.FirstName
	member.LastName = req.LastName
	member.Email = req.Email
	member.Phone = req.Phone
	member.PlanID = plan.ID
	member.PlanType = rules.PlanType(req.PlanType)
	member.StartDate = req.StartDate
	member.PaymentDueDate = req.PaymentDueDate
	if req.EndDate != "" {
		member.EndDate = req.EndDate
	}
	if err := s.deriveFields(member, plan, req.PaymentAmount, dependentChanged); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	member.Plan = *plan
	return s.buildDetail(ctx, member)
}

// deriveFields fills EndDate and PaymentAmount from the plan. When force is
// set (create, or a dependent field changed on update) existing values are
// overwritten; otherwise only missing values are filled in.
func (s *MemberService) deriveFields(member *db_models.Member, plan *db_models.Plan, amountOverride *int64, force bool) error {
	if !member.PlanType.Valid() {
		return fmt.Errorf("%w: plan_type must be monthly or annual", utils.ErrValidation)
	}

	if force || member.EndDate == "" {
		endDate, err := rules.PlanEndDate(member.StartDate, member.PlanType)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrValidation, err)
		}
		member.EndDate = endDate
	}

	switch {
	case amountOverride != nil && *amountOverride >= 0:
		member.PaymentAmount = *amountOverride
	case force || member.PaymentAmount == 0:
		member.PaymentAmount = rules.PlanAmount(plan.Price, member.PlanType)
	}
	return nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*response_models.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return s.buildDetail(ctx, member)
}

func (s *MemberService) ListMembers(ctx context.Context) ([]response_models.MemberResponse, error) {
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	today := utils.TodayLocal()
	responses := make([]response_models.MemberResponse, 0, len(members))
	for i := range members {
		dates, err := s.checkInRepo.DatesByMember(ctx, members[i].ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		responses = append(responses, s.toResponse(&members[i], today, dates))
	}
	return responses, nil
}

func (s *MemberService) buildDetail(ctx context.Context, member *db_models.Member) (*response_models.MemberResponse, error) {
	checkIns, err := s.checkInRepo.FindByMember(ctx, member.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	workouts, err := s.workoutRepo.RecentByMember(ctx, member.ID, recentWorkoutLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	dates := make([]string, 0, len(checkIns))
	records := make([]response_models.AttendanceRecord, 0, len(checkIns))
	for _, checkIn := range checkIns {
		dates = append(dates, checkIn.Date)
		records = append(records, response_models.AttendanceRecord{ID: checkIn.ID, Date: checkIn.Date})
	}

	resp := s.toResponse(member, utils.TodayLocal(), dates)
	resp.AttendanceRecords = records
	resp.RecentWorkouts = make([]response_models.WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		resp.RecentWorkouts = append(resp.RecentWorkouts, response_models.WorkoutResponse{
			ID:              workout.ID,
			MemberID:        workout.MemberID,
			Exercise:        workout.Exercise,
			Sets:            workout.Sets,
			DurationMinutes: workout.DurationMinutes,
			Date:            workout.Date,
		})
	}
	return &resp, nil
}

func (s *MemberService) toResponse(member *db_models.Member, today string, attendanceDates []string) response_models.MemberResponse {
	activeStatus := "Inactive"
	if rules.IsActive(member.StartDate, member.EndDate, today) {
		activeStatus = "Active"
	}

	return response_models.MemberResponse{
		ID:                  member.ID,
		FirstName:           member.FirstName,
		LastName:            member.LastName,
		Name:                member.Name(),
		Email:               member.Email,
		Phone:               member.Phone,
		PlanID:              member.PlanID,
		PlanName:            member.Plan.Name,
		PlanType:            string(member.PlanType),
		StartDate:           member.StartDate,
		EndDate:             member.EndDate,
		PaymentAmount:       member.PaymentAmount,
		PaymentDueDate:      member.PaymentDueDate,
		PaymentStatus:       string(member.PaymentStatus),
		ActiveStatus:        activeStatus,
		Expired:             rules.IsExpired(member.EndDate, today),
		Overdue:             rules.IsOverdue(member.PaymentDueDate, string(member.PaymentStatus), today),
		AttendanceFrequency: rules.AttendanceFrequency(attendanceDates, today),
	}
}
