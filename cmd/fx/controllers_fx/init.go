package controllers_fx

import (
	"go.uber.org/fx"

	"gymflow/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewMemberController,
	controllers.NewAttendanceController,
	controllers.NewPlanController,
	controllers.NewPaymentController,
	controllers.NewWorkoutController,
	controllers.NewDashboardController,
)
