package member_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideMemberService)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepositoryInterface {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(
	memberRepo repositories.MemberRepositoryInterface,
	planRepo repositories.PlanRepositoryInterface,
	checkInRepo repositories.CheckInRepositoryInterface,
	workoutRepo repositories.WorkoutRepositoryInterface,
) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo, planRepo, checkInRepo, workoutRepo)
}
