package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepositoryInterface {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.PlanRepositoryInterface) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}
