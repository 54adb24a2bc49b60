package services

import (
	"context"
	"time"

	"gymflow/internal/models/response_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/rules"
	"gymflow/pkg/utils"
)

type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*response_models.DashboardStats, error)
}

type DashboardService struct {
	memberRepo  repositories.MemberRepositoryInterface
	checkInRepo repositories.CheckInRepositoryInterface
}

func NewDashboardService(
	memberRepo repositories.MemberRepositoryInterface,
	checkInRepo repositories.CheckInRepositoryInterface,
) DashboardServiceInterface {
	return &DashboardService{memberRepo: memberRepo, checkInRepo: checkInRepo}
}

func (s *DashboardService) Stats(ctx context.Context) (*response_models.DashboardStats, error) {
	today := utils.TodayLocal()

	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var active int64
	for i := range members {
		if rules.IsActive(members[i].StartDate, members[i].EndDate, today) {
			active++
		}
	}

	todayCount, err := s.checkInRepo.CountOn(ctx, today)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// 7-day check-in series, oldest first, today last.
	todayDay, _ := rules.ParseDay(today)
	series := make([]response_models.DayCount, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := rules.FormatDay(todayDay.Add(-time.Duration(offset) * 24 * time.Hour))
		count, err := s.checkInRepo.CountOn(ctx, day)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		series = append(series, response_models.DayCount{Date: day, Count: count})
	}

	return &response_models.DashboardStats{
		TotalMembers:   int64(len(members)),
		ActiveMembers:  active,
		TodayCheckIns:  todayCount,
		WeeklyCheckIns: series,
	}, nil
}
