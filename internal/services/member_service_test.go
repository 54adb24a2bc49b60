package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/request_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/utils"
)

func newMemberFixture(t *testing.T) (MemberServiceInterface, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewMemberService(
		repositories.NewMemberRepository(db),
		repositories.NewPlanRepository(db),
		repositories.NewCheckInRepository(db),
		repositories.NewWorkoutRepository(db),
	)
	return service, db
}

func memberRequest(planID uuid.UUID, planType, startDate string) request_models.MemberRequest {
	return request_models.MemberRequest{
		FirstName: "Achieng",
		LastName:  "Owuor",
		Email:     "achieng@example.com",
		Phone:     "+254711000001",
		PlanID:    planID.String(),
		PlanType:  planType,
		StartDate: startDate,
	}
}

func TestCreateMember_DerivesMonthlyEndDateAndAmount(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	resp, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "2026-01-15"))
	require.NoError(t, err)

	assert.Equal(t, "2026-02-15", resp.EndDate)
	assert.EqualValues(t, 2500, resp.PaymentAmount)
	assert.Equal(t, "Essential Fitness", resp.PlanName)
	assert.Equal(t, "pending", resp.PaymentStatus)
}

func TestCreateMember_DerivesAnnualEndDateAndAmount(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "group")

	resp, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "annual", "2026-01-15"))
	require.NoError(t, err)

	assert.Equal(t, "2027-01-15", resp.EndDate)
	assert.EqualValues(t, 42000, resp.PaymentAmount, "annual charge is twelve times the listed price")
}

func TestCreateMember_AmountOverrideWins(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	amount := int64(1999)
	req := memberRequest(plan.ID, "monthly", "2026-01-15")
	req.PaymentAmount = &amount

	resp, err := service.CreateMember(context.Background(), req)
	require.NoError(t, err)
	assert.EqualValues(t, 1999, resp.PaymentAmount)
}

func TestCreateMember_UnknownPlan(t *testing.T) {
	service, _ := newMemberFixture(t)

	_, err := service.CreateMember(context.Background(),
		memberRequest(uuid.New(), "monthly", "2026-01-15"))
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestCreateMember_InvalidStartDate(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	_, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "15-01-2026"))
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestUpdateMember_RederivesWhenPlanTypeChanges(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	created, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "2026-01-15"))
	require.NoError(t, err)

	// A manual end date is submitted alongside a plan type change; the
	// derived value wins.
	req := memberRequest(plan.ID, "annual", "2026-01-15")
	req.EndDate = "2030-01-01"

	updated, err := service.UpdateMember(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "2027-01-15", updated.EndDate)
	assert.EqualValues(t, 30000, updated.PaymentAmount)
}

func TestUpdateMember_KeepsManualEndDateWhenNothingDependentChanges(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	created, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "2026-01-15"))
	require.NoError(t, err)

	req := memberRequest(plan.ID, "monthly", "2026-01-15")
	req.EndDate = "2030-01-01"

	updated, err := service.UpdateMember(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01", updated.EndDate)
}

func TestUpdateMember_UnknownMember(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	_, err := service.UpdateMember(context.Background(), uuid.New(),
		memberRequest(plan.ID, "monthly", "2026-01-15"))
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}

func TestGetMember_ExpiredMembershipReportedInactive(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	created, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "2020-01-01"))
	require.NoError(t, err)

	got, err := service.GetMember(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Inactive", got.ActiveStatus)
	assert.True(t, got.Expired)
}

func TestDeleteMember(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	created, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "2026-01-15"))
	require.NoError(t, err)

	require.NoError(t, service.DeleteMember(context.Background(), created.ID))

	_, err = service.GetMember(context.Background(), created.ID)
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)

	assert.ErrorIs(t, service.DeleteMember(context.Background(), created.ID), utils.ErrMemberNotFound)
}

func TestListMembers_IncludesAttendanceFrequency(t *testing.T) {
	service, db := newMemberFixture(t)
	plan := seededPlan(t, db, "essential")

	created, err := service.CreateMember(context.Background(),
		memberRequest(plan.ID, "monthly", "2020-01-01"))
	require.NoError(t, err)

	today := utils.TodayLocal()
	require.NoError(t, db.Create(&db_models.CheckIn{
		MemberID: created.ID,
		Date:     today,
		Time:     "08:30",
	}).Error)

	members, err := service.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 1, members[0].AttendanceFrequency)
}
