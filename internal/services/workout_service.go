package services

import (
	"context"

	"github.com/google/uuid"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/request_models"
	"gymflow/internal/models/response_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/rules"
	"gymflow/pkg/utils"
)

type WorkoutServiceInterface interface {
	LogWorkout(ctx context.Context, req request_models.WorkoutRequest) (*response_models.WorkoutResponse, error)
	GetWorkout(ctx context.Context, id uuid.UUID) (*response_models.WorkoutResponse, error)
	UpdateWorkout(ctx context.Context, id uuid.UUID, req request_models.WorkoutRequest) (*response_models.WorkoutResponse, error)
	DeleteWorkout(ctx context.Context, id uuid.UUID) error
	ListWorkouts(ctx context.Context, memberID *uuid.UUID) ([]response_models.WorkoutResponse, error)
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutRepositoryInterface
	memberRepo  repositories.MemberRepositoryInterface
}

func NewWorkoutService(
	workoutRepo repositories.WorkoutRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
) WorkoutServiceInterface {
	return &WorkoutService{workoutRepo: workoutRepo, memberRepo: memberRepo}
}

func (s *WorkoutService) LogWorkout(ctx context.Context, req request_models.WorkoutRequest) (*response_models.WorkoutResponse, error) {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, utils.ValidationError("member_id")
	}
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	date := req.Date
	if date == "" {
		date = utils.TodayLocal()
	} else if _, ok := rules.ParseDay(date); !ok {
		return nil, utils.ValidationError("date")
	}

	workout := &db_models.Workout{
		MemberID:        member.ID,
		Exercise:        req.Exercise,
		Sets:            req.Sets,
		DurationMinutes: req.DurationMinutes,
		Date:            date,
	}
	if err := s.workoutRepo.Insert(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) GetWorkout(ctx context.Context, id uuid.UUID) (*response_models.WorkoutResponse, error) {
	workout, err := s.workoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}
	resp := toWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, id uuid.UUID, req request_models.WorkoutRequest) (*response_models.WorkoutResponse, error) {
	workout, err := s.workoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	if req.Date != "" {
		if _, ok := rules.ParseDay(req.Date); !ok {
			return nil, utils.ValidationError("date")
		}
		workout.Date = req.Date
	}
	workout.Exercise = req.Exercise
	workout.Sets = req.Sets
	workout.DurationMinutes = req.DurationMinutes

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	workout, err := s.workoutRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if workout == nil {
		return utils.ErrWorkoutNotFound
	}
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *WorkoutService) ListWorkouts(ctx context.Context, memberID *uuid.UUID) ([]response_models.WorkoutResponse, error) {
	var workouts []db_models.Workout
	var err error
	if memberID != nil {
		workouts, err = s.workoutRepo.RecentByMember(ctx, *memberID, recentWorkoutLimit)
	} else {
		workouts, err = s.workoutRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, toWorkoutResponse(&workouts[i]))
	}
	return responses, nil
}

func toWorkoutResponse(workout *db_models.Workout) response_models.WorkoutResponse {
	return response_models.WorkoutResponse{
		ID:              workout.ID,
		MemberID:        workout.MemberID,
		Exercise:        workout.Exercise,
		Sets:            workout.Sets,
		DurationMinutes: workout.DurationMinutes,
		Date:            workout.Date,
	}
}
