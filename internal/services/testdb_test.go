package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymflow/internal/infra"
	"gymflow/internal/models/db_models"
)

// newTestDB opens an in-memory database with the production schema and
// seed plans. Connections are capped at one so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

func seededPlan(t *testing.T, db *gorm.DB, code string) *db_models.Plan {
	t.Helper()

	var plan db_models.Plan
	require.NoError(t, db.Where("code = ?", code).First(&plan).Error)
	return &plan
}

func insertMember(t *testing.T, db *gorm.DB, member *db_models.Member) *db_models.Member {
	t.Helper()

	require.NoError(t, db.Create(member).Error)
	return member
}
