package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"copbike-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Ride{},
		&models.CommunityChallenge{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Rides must not outlive their owner. AutoMigrate already emits the
	// cascade FK from the association tag on most backends; this covers
	// databases migrated before the constraint existed.
	if err := db.Exec("ALTER TABLE rides ADD CONSTRAINT fk_rides_owner FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add cascade constraint for rides: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial challenges for
// development/testing. Challenges have no user-facing write path, so a fresh
// environment gets its fixtures here.
func SeedData(db *gorm.DB) error {
	var challengeCount int64
	db.Model(&models.CommunityChallenge{}).Count(&challengeCount)

	if challengeCount > 0 {
		fmt.Println("Database already has challenges, skipping seed")
		return nil
	}

	challenges := []models.CommunityChallenge{
		{
			Title:        "Semana de Bike ao Trabalho",
			Description:  "Troque o carro pela bicicleta no trajeto para o trabalho durante uma semana inteira.",
			StartDate:    models.NewDate(2026, 9, 7),
			EndDate:      models.NewDate(2026, 9, 13),
			LocationName: "Belém, PA",
		},
		{
			Title:        "Desafio 100 km do Mês",
			Description:  "Acumule 100 km pedalados dentro do mês e ajude a reduzir as emissões da cidade.",
			StartDate:    models.NewDate(2026, 10, 1),
			EndDate:      models.NewDate(2026, 10, 31),
			LocationName: "Belém, PA",
		},
	}

	for _, challenge := range challenges {
		if err := db.Create(&challenge).Error; err != nil {
			fmt.Printf("Warning: Could not create challenge %s: %v\n", challenge.Title, err)
		}
	}

	fmt.Println("Database seeded with community challenges")
	return nil
}
