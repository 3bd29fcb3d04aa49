package repositories_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"copbike-api/database"
	"copbike-api/models"
	"copbike-api/repositories"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// _foreign_keys goes in the DSN so every pooled connection enforces the
	// ride->owner cascade, a bare PRAGMA would only cover one connection
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}).Error)
}

func TestListAllNewestFirstWithOwner(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewRideRepository(db)

	seedUser(t, db, "u1", "alice")

	base := time.Date(2026, 8, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Ride{
			ID:         fmt.Sprintf("r%d", i),
			UserID:     "u1",
			StartTime:  base.Add(time.Duration(i) * time.Minute),
			DistanceKm: 1,
		}))
	}

	rides, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, rides, 3)
	assert.Equal(t, "r2", rides[0].ID)
	assert.Equal(t, "r0", rides[2].ID)
	assert.Equal(t, "alice", rides[0].User.Username)
}

func TestSumsForUserCoalescesToZero(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewRideRepository(db)

	seedUser(t, db, "u1", "alice")

	distanceKm, co2SavedKg, err := repo.SumsForUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, distanceKm)
	assert.Equal(t, 0.0, co2SavedKg)
}

func TestTotalsByUserGroupsAndOrders(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewRideRepository(db)

	seedUser(t, db, "u1", "alice")
	seedUser(t, db, "u2", "bruno")

	rides := []models.Ride{
		{ID: "r1", UserID: "u1", StartTime: time.Now(), DistanceKm: 2.0},
		{ID: "r2", UserID: "u1", StartTime: time.Now(), DistanceKm: 3.5},
		{ID: "r3", UserID: "u2", StartTime: time.Now(), DistanceKm: 10.0},
	}
	for i := range rides {
		require.NoError(t, repo.Create(&rides[i]))
	}

	totals, err := repo.TotalsByUser()
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "u2", totals[0].UserID)
	assert.InDelta(t, 10.0, totals[0].TotalDistanceKm, 1e-9)
	assert.Equal(t, "u1", totals[1].UserID)
	assert.InDelta(t, 5.5, totals[1].TotalDistanceKm, 1e-9)
}

func TestDeletingOwnerCascadesToRides(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewRideRepository(db)

	seedUser(t, db, "u1", "alice")
	require.NoError(t, repo.Create(&models.Ride{
		ID:        "r1",
		UserID:    "u1",
		StartTime: time.Now(),
	}))

	require.NoError(t, db.Delete(&models.User{}, "id = ?", "u1").Error)

	var count int64
	db.Model(&models.Ride{}).Where("user_id = ?", "u1").Count(&count)
	assert.Zero(t, count, "rides must not outlive their owner")
}
