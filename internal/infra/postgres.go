package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymflow/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError lets the unique index on check_ins surface as
	// gorm.ErrDuplicatedKey instead of a raw pgconn error.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

// Migrate creates the schema and seeds the pricing tiers. Shared with the
// test harness, which runs it against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Member{},
		&db_models.CheckIn{},
		&db_models.Workout{},
		&db_models.Payment{},
	); err != nil {
		return err
	}
	return SeedPlans(db)
}

// SeedPlans inserts the three standard pricing tiers if missing. Prices are
// whole shillings per monthly-equivalent unit.
func SeedPlans(db *gorm.DB) error {
	plans := []db_models.Plan{
		{Code: "essential", Name: "Essential Fitness", Price: 2500, Currency: "KES", IsActive: true},
		{Code: "group", Name: "Diverse Group Class", Price: 3500, Currency: "KES", IsActive: true},
		{Code: "wellness", Name: "Wellness & Recovery", Price: 4500, Currency: "KES", IsActive: true},
	}
	for i := range plans {
		if err := db.Where(db_models.Plan{Code: plans[i].Code}).
			FirstOrCreate(&plans[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
