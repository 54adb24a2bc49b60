package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymflow/internal/models/request_models"
	"gymflow/internal/repositories"
)

func TestListPlans_ReturnsSeededTiersOrderedByPrice(t *testing.T) {
	db := newTestDB(t)
	service := NewPlanService(repositories.NewPlanRepository(db))

	plans, err := service.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, "Essential Fitness", plans[0].Name)
	assert.EqualValues(t, 2500, plans[0].Price)
	assert.Equal(t, "Diverse Group Class", plans[1].Name)
	assert.EqualValues(t, 3500, plans[1].Price)
	assert.Equal(t, "Wellness & Recovery", plans[2].Name)
	assert.EqualValues(t, 4500, plans[2].Price)
}

func TestCreatePlan_DefaultsCurrency(t *testing.T) {
	db := newTestDB(t)
	service := NewPlanService(repositories.NewPlanRepository(db))

	plan, err := service.CreatePlan(context.Background(), request_models.CreatePlanRequest{
		Code:  "student",
		Name:  "Student Pass",
		Price: 1500,
	})
	require.NoError(t, err)

	assert.Equal(t, "KES", plan.Currency)
	assert.True(t, plan.IsActive)

	plans, err := service.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 4)
}
