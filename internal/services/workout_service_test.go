package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymflow/internal/models/request_models"
	"gymflow/internal/repositories"
	"gymflow/pkg/utils"
)

func newWorkoutFixture(t *testing.T) (WorkoutServiceInterface, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewWorkoutService(
		repositories.NewWorkoutRepository(db),
		repositories.NewMemberRepository(db),
	)
	return service, db
}

func TestLogWorkout_DefaultsDateToToday(t *testing.T) {
	service, db := newWorkoutFixture(t)
	plan := seededPlan(t, db, "essential")
	member := activeMember(t, db, plan)

	workout, err := service.LogWorkout(context.Background(), request_models.WorkoutRequest{
		MemberID: member.ID.String(),
		Exercise: "Deadlift",
		Sets:     4,
	})
	require.NoError(t, err)

	assert.Equal(t, utils.TodayLocal(), workout.Date)
	assert.Equal(t, "Deadlift", workout.Exercise)
}

func TestLogWorkout_UnknownMember(t *testing.T) {
	service, _ := newWorkoutFixture(t)

	_, err := service.LogWorkout(context.Background(), request_models.WorkoutRequest{
		MemberID: uuid.NewString(),
		Exercise: "Squat",
		Sets:     3,
	})
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}

func TestLogWorkout_InvalidDate(t *testing.T) {
	service, db := newWorkoutFixture(t)
	plan := seededPlan(t, db, "essential")
	member := activeMember(t, db, plan)

	_, err := service.LogWorkout(context.Background(), request_models.WorkoutRequest{
		MemberID: member.ID.String(),
		Exercise: "Squat",
		Sets:     3,
		Date:     "yesterday",
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestListWorkouts_MemberFilterIsBounded(t *testing.T) {
	service, db := newWorkoutFixture(t)
	plan := seededPlan(t, db, "essential")
	member := activeMember(t, db, plan)

	for i := 0; i < 12; i++ {
		_, err := service.LogWorkout(context.Background(), request_models.WorkoutRequest{
			MemberID: member.ID.String(),
			Exercise: fmt.Sprintf("Exercise %d", i),
			Sets:     3,
		})
		require.NoError(t, err)
	}

	memberID := member.ID
	workouts, err := service.ListWorkouts(context.Background(), &memberID)
	require.NoError(t, err)
	assert.Len(t, workouts, 10, "member history is capped at the most recent sessions")
}

func TestUpdateAndDeleteWorkout(t *testing.T) {
	service, db := newWorkoutFixture(t)
	plan := seededPlan(t, db, "essential")
	member := activeMember(t, db, plan)

	created, err := service.LogWorkout(context.Background(), request_models.WorkoutRequest{
		MemberID: member.ID.String(),
		Exercise: "Bench Press",
		Sets:     3,
	})
	require.NoError(t, err)

	updated, err := service.UpdateWorkout(context.Background(), created.ID, request_models.WorkoutRequest{
		MemberID: member.ID.String(),
		Exercise: "Incline Bench Press",
		Sets:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Incline Bench Press", updated.Exercise)
	assert.EqualValues(t, 5, updated.Sets)

	require.NoError(t, service.DeleteWorkout(context.Background(), created.ID))
	_, err = service.GetWorkout(context.Background(), created.ID)
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}
