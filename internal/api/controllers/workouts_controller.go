package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymflow/internal/models/request_models"
	"gymflow/internal/services"
	"gymflow/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

func (wc *WorkoutController) LogWorkoutHandler(c *gin.Context) {
	var req request_models.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := wc.workoutService.LogWorkout(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, workout, "Workout logged successfully")
}

// ListWorkoutsHandler lists workouts. With ?member_id= it returns the
// member's most recent sessions.
func (wc *WorkoutController) ListWorkoutsHandler(c *gin.Context) {
	var memberID *uuid.UUID
	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		id, err := uuid.Parse(memberIDStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
			return
		}
		memberID = &id
	}

	workouts, err := wc.workoutService.ListWorkouts(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workouts, "Fetched workouts successfully")
}

func (wc *WorkoutController) GetWorkoutHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	workout, err := wc.workoutService.GetWorkout(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workout, "Fetched workout successfully")
}

func (wc *WorkoutController) UpdateWorkoutHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var req request_models.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := wc.workoutService.UpdateWorkout(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workout, "Workout updated successfully")
}

func (wc *WorkoutController) DeleteWorkoutHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	if err := wc.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Workout deleted successfully")
}
