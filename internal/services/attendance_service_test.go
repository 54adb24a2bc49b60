package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/rules"
	"gymflow/pkg/utils"
)

func newAttendanceFixture(t *testing.T) (AttendanceServiceInterface, *gorm.DB, *db_models.Plan) {
	t.Helper()

	db := newTestDB(t)
	service := NewAttendanceService(
		repositories.NewMemberRepository(db),
		repositories.NewCheckInRepository(db),
		zap.NewNop(),
	)
	return service, db, seededPlan(t, db, "essential")
}

func activeMember(t *testing.T, db *gorm.DB, plan *db_models.Plan) *db_models.Member {
	t.Helper()

	return insertMember(t, db, &db_models.Member{
		FirstName:      "Wanjiku",
		LastName:       "Kamau",
		Email:          "wanjiku@example.com",
		Phone:          "+254700000001",
		PlanID:         plan.ID,
		PlanType:       rules.PlanMonthly,
		StartDate:      "2020-01-01",
		EndDate:        "2099-12-31",
		PaymentAmount:  plan.Price,
		PaymentDueDate: "2099-12-31",
		PaymentStatus:  db_models.PaymentPaid,
	})
}

func countCheckIns(t *testing.T, db *gorm.DB, memberID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&db_models.CheckIn{}).
		Where("member_id = ?", memberID).Count(&count).Error)
	return count
}

func TestCheckInMember_AppendsExactlyOneRecord(t *testing.T) {
	service, db, plan := newAttendanceFixture(t)
	member := activeMember(t, db, plan)

	resp, err := service.CheckInMember(context.Background(), member.ID)
	require.NoError(t, err)

	assert.Equal(t, member.ID, resp.MemberID)
	assert.Equal(t, "Wanjiku Kamau", resp.MemberName)
	assert.Equal(t, utils.TodayLocal(), resp.Date)
	assert.NotEmpty(t, resp.Time)
	assert.EqualValues(t, 1, countCheckIns(t, db, member.ID))
}

func TestCheckInMember_RepeatSameDayRejected(t *testing.T) {
	service, db, plan := newAttendanceFixture(t)
	member := activeMember(t, db, plan)

	_, err := service.CheckInMember(context.Background(), member.ID)
	require.NoError(t, err)

	_, err = service.CheckInMember(context.Background(), member.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadyCheckedIn)
	assert.EqualValues(t, 1, countCheckIns(t, db, member.ID), "repeat check-in must not add a record")
}

func TestCheckInMember_ExpiredMembershipRejected(t *testing.T) {
	service, db, plan := newAttendanceFixture(t)
	member := insertMember(t, db, &db_models.Member{
		FirstName:     "Otieno",
		LastName:      "Odhiambo",
		Email:         "otieno@example.com",
		Phone:         "+254700000002",
		PlanID:        plan.ID,
		PlanType:      rules.PlanMonthly,
		StartDate:     "2020-01-01",
		EndDate:       "2020-02-01",
		PaymentStatus: db_models.PaymentPending,
	})

	_, err := service.CheckInMember(context.Background(), member.ID)
	assert.ErrorIs(t, err, utils.ErrMembershipExpired)
	assert.EqualValues(t, 0, countCheckIns(t, db, member.ID))
}

func TestCheckInMember_MembershipEndingTodayRejected(t *testing.T) {
	service, db, plan := newAttendanceFixture(t)
	member := insertMember(t, db, &db_models.Member{
		FirstName:     "Zawadi",
		LastName:      "Njoroge",
		Email:         "zawadi@example.com",
		Phone:         "+254700000003",
		PlanID:        plan.ID,
		PlanType:      rules.PlanMonthly,
		StartDate:     "2020-01-01",
		EndDate:       utils.TodayLocal(),
		PaymentStatus: db_models.PaymentPending,
	})

	_, err := service.CheckInMember(context.Background(), member.ID)
	assert.ErrorIs(t, err, utils.ErrMembershipExpired, "expiry hits at the start of the end date")
	assert.EqualValues(t, 0, countCheckIns(t, db, member.ID))
}

func TestCheckInMember_UnknownMember(t *testing.T) {
	service, _, _ := newAttendanceFixture(t)

	_, err := service.CheckInMember(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}

func TestListByDate_InvalidDate(t *testing.T) {
	service, _, _ := newAttendanceFixture(t)

	_, err := service.ListByDate(context.Background(), "31/03/2026")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestListByDate_ReturnsTodaysCheckIns(t *testing.T) {
	service, db, plan := newAttendanceFixture(t)
	member := activeMember(t, db, plan)

	_, err := service.CheckInMember(context.Background(), member.ID)
	require.NoError(t, err)

	checkIns, err := service.ListByDate(context.Background(), utils.TodayLocal())
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, member.ID, checkIns[0].MemberID)
}

func TestListByMember_UnknownMember(t *testing.T) {
	service, _, _ := newAttendanceFixture(t)

	_, err := service.ListByMember(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}
