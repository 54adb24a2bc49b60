package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/response_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/rules"
	"gymflow/pkg/utils"
)

type AttendanceServiceInterface interface {
	CheckInMember(ctx context.Context, memberID uuid.UUID) (*response_models.CheckInResponse, error)
	ListByDate(ctx context.Context, date string) ([]response_models.CheckInResponse, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]response_models.CheckInResponse, error)
}

type AttendanceService struct {
	memberRepo  repositories.MemberRepositoryInterface
	checkInRepo repositories.CheckInRepositoryInterface
	logger      *zap.Logger
}

func NewAttendanceService(
	memberRepo repositories.MemberRepositoryInterface,
	checkInRepo repositories.CheckInRepositoryInterface,
	logger *zap.Logger,
) AttendanceServiceInterface {
	return &AttendanceService{
		memberRepo:  memberRepo,
		checkInRepo: checkInRepo,
		logger:      logger,
	}
}

// CheckInMember runs the check-in decision table against the latest stored
// state and, if allowed, appends exactly one check-in. The unique index on
// (member_id, date) backs the duplicate rule up under concurrent requests:
// a second insert for the same day comes back as ErrAlreadyCheckedIn, not a
// duplicate row.
func (s *AttendanceService) CheckInMember(ctx context.Context, memberID uuid.UUID) (*response_models.CheckInResponse, error) {
	today := utils.TodayLocal()

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	input := rules.CheckInInput{
		MemberFound: member != nil,
		Today:       today,
	}
	if member != nil {
		input.EndDate = member.EndDate
		alreadyToday, err := s.checkInRepo.ExistsForMemberOn(ctx, member.ID, today)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		input.CheckedInToday = alreadyToday
	}

	switch rules.DecideCheckIn(input) {
	case rules.CheckInMemberNotFound:
		return nil, utils.ErrMemberNotFound
	case rules.CheckInAlreadyToday:
		return nil, utils.ErrAlreadyCheckedIn
	case rules.CheckInExpired:
		return nil, utils.ErrMembershipExpired
	}

	checkIn := &db_models.CheckIn{
		MemberID:   member.ID,
		Date:       today,
		Time:       utils.NowClock(),
		MemberName: member.Name(),
	}
	if err := s.checkInRepo.Insert(ctx, checkIn); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrAlreadyCheckedIn
		}
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("member checked in",
		zap.String("member_id", member.ID.String()),
		zap.String("date", today),
		zap.String("time", checkIn.Time))

	resp := toCheckInResponse(checkIn)
	return &resp, nil
}

func (s *AttendanceService) ListByDate(ctx context.Context, date string) ([]response_models.CheckInResponse, error) {
	if _, ok := rules.ParseDay(date); !ok {
		return nil, utils.ValidationError("date")
	}
	checkIns, err := s.checkInRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCheckInResponses(checkIns), nil
}

func (s *AttendanceService) ListByMember(ctx context.Context, memberID uuid.UUID) ([]response_models.CheckInResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	checkIns, err := s.checkInRepo.FindByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCheckInResponses(checkIns), nil
}

func toCheckInResponse(checkIn *db_models.CheckIn) response_models.CheckInResponse {
	return response_models.CheckInResponse{
		ID:         checkIn.ID,
		MemberID:   checkIn.MemberID,
		MemberName: checkIn.MemberName,
		Date:       checkIn.Date,
		Time:       checkIn.Time,
	}
}

func toCheckInResponses(checkIns []db_models.CheckIn) []response_models.CheckInResponse {
	responses := make([]response_models.CheckInResponse, 0, len(checkIns))
	for i := range checkIns {
		responses = append(responses, toCheckInResponse(&checkIns[i]))
	}
	return responses
}
