package dashboard_fx

import (
	"go.uber.org/fx"

	"gymflow/internal/repositories"
	"gymflow/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(
	memberRepo repositories.MemberRepositoryInterface,
	checkInRepo repositories.CheckInRepositoryInterface,
) services.DashboardServiceInterface {
	return services.NewDashboardService(memberRepo, checkInRepo)
}
