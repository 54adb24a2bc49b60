package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo, provideWorkoutService)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepositoryInterface {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(
	workoutRepo repositories.WorkoutRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, memberRepo)
}
