package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymflow/internal/models/request_models"
	"gymflow/internal/services"
	"gymflow/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// CreateMemberHandler godoc
// @Summary Enroll a new member
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.MemberRequest true "Member payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /members [post]
func (mc *MemberController) CreateMemberHandler(c *gin.Context) {
	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := mc.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, member, "Member created successfully")
}

func (mc *MemberController) ListMembersHandler(c *gin.Context) {
	members, err := mc.memberService.ListMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Fetched members successfully")
}

// GetMemberHandler returns the full member profile including derived
// billing status, attendance history and recent workouts.
func (mc *MemberController) GetMemberHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, err := mc.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Fetched member successfully")
}

func (mc *MemberController) UpdateMemberHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := mc.memberService.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member updated successfully")
}

func (mc *MemberController) DeleteMemberHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := mc.memberService.DeleteMember(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member deleted successfully")
}
