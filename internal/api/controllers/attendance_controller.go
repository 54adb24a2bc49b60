package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymflow/internal/models/request_models"
	"gymflow/internal/services"
	"gymflow/pkg/utils"
)

type AttendanceController struct {
	attendanceService services.AttendanceServiceInterface
}

func NewAttendanceController(attendanceService services.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// CheckInHandler godoc
// @Summary Check a member in for today
// @Tags Attendance
// @Accept json
// @Produce json
// @Param request body request_models.CheckInRequest true "Check-in payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse "membership expired"
// @Failure 409 {object} utils.APIResponse "already checked in today"
// @Router /attendance [post]
func (ac *AttendanceController) CheckInHandler(c *gin.Context) {
	var req request_models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	checkIn, err := ac.attendanceService.CheckInMember(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, checkIn, "Checked in successfully")
}

// ListHandler lists check-ins filtered by ?date= or ?member_id=.
// With no filter it returns today's check-ins.
func (ac *AttendanceController) ListHandler(c *gin.Context) {
	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
			return
		}
		checkIns, err := ac.attendanceService.ListByMember(c.Request.Context(), memberID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, checkIns, "Fetched check-ins successfully")
		return
	}

	date := c.DefaultQuery("date", utils.TodayLocal())
	checkIns, err := ac.attendanceService.ListByDate(c.Request.Context(), date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Fetched check-ins successfully")
}

func (ac *AttendanceController) TodayHandler(c *gin.Context) {
	checkIns, err := ac.attendanceService.ListByDate(c.Request.Context(), utils.TodayLocal())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Fetched today's check-ins successfully")
}
