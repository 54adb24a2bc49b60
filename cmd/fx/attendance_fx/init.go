package attendance_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
)

var Module = fx.Provide(
	provideCheckInRepo, provideAttendanceService)

func provideCheckInRepo(db *gorm.DB) repositories.CheckInRepositoryInterface {
	return repositories.NewCheckInRepository(db)
}

func provideAttendanceService(
	memberRepo repositories.MemberRepositoryInterface,
	checkInRepo repositories.CheckInRepositoryInterface,
	logger *zap.Logger,
) services.AttendanceServiceInterface {
	return services.NewAttendanceService(memberRepo, checkInRepo, logger)
}
