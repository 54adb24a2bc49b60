package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"gymflow/cmd/fx/account_fx"
	"gymflow/cmd/fx/attendance_fx"
	"gymflow/cmd/fx/controllers_fx"
	"gymflow/cmd/fx/dashboard_fx"
	"gymflow/cmd/fx/db_fx"
	"gymflow/cmd/fx/logger_fx"
	"gymflow/cmd/fx/mail_fx"
	"gymflow/cmd/fx/member_fx"
	"gymflow/cmd/fx/memcache_fx"
	"gymflow/cmd/fx/payment_fx"
	"gymflow/cmd/fx/plan_fx"
	"gymflow/cmd/fx/workout_fx"
	"gymflow/internal/api/controllers"
	"gymflow/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,

		account_fx.Module,
		member_fx.Module,
		attendance_fx.Module,
		plan_fx.Module,
		payment_fx.Module,
		workout_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	memberController *controllers.MemberController,
	attendanceController *controllers.AttendanceController,
	planController *controllers.PlanController,
	paymentController *controllers.PaymentController,
	workoutController *controllers.WorkoutController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r,
		accountController, memberController, attendanceController,
		planController, paymentController, workoutController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	memberController *controllers.MemberController,
	attendanceController *controllers.AttendanceController,
	planController *controllers.PlanController,
	paymentController *controllers.PaymentController,
	workoutController *controllers.WorkoutController,
	dashboardController *controllers.DashboardController,
) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/forgot-password", accountController.ForgotPassword)
	auth.POST("/reset-password", accountController.ResetPassword)
	auth.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())

	members := protected.Group("/members")
	members.POST("", memberController.CreateMemberHandler)
	members.GET("", memberController.ListMembersHandler)
	members.GET("/:id", memberController.GetMemberHandler)
	members.PUT("/:id", memberController.UpdateMemberHandler)
	members.DELETE("/:id", memberController.DeleteMemberHandler)

	attendance := protected.Group("/attendance")
	attendance.POST("", attendanceController.CheckInHandler)
	attendance.GET("", attendanceController.ListHandler)
	attendance.GET("/today", attendanceController.TodayHandler)

	memberships := protected.Group("/memberships")
	memberships.GET("/plans", planController.ListPlansHandler)
	memberships.POST("/plans", middleware.RoleMiddleware("admin"), planController.CreatePlanHandler)

	workouts := protected.Group("/workouts")
	workouts.POST("", workoutController.LogWorkoutHandler)
	workouts.GET("", workoutController.ListWorkoutsHandler)
	workouts.GET("/:id", workoutController.GetWorkoutHandler)
	workouts.PUT("/:id", workoutController.UpdateWorkoutHandler)
	workouts.DELETE("/:id", workoutController.DeleteWorkoutHandler)

	payments := protected.Group("/payments")
	payments.POST("", paymentController.RecordPaymentHandler)
	payments.GET("", paymentController.ListPaymentsHandler)
	payments.PUT("/:id/status", paymentController.UpdateStatusHandler)
	payments.GET("/revenue/stats", paymentController.RevenueStatsHandler)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/stats", dashboardController.StatsHandler)
}
