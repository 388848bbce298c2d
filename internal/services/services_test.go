package services

import (
	"context"
	"path/filepath"
	"testing"

	"istanfix/internal/config"
	"istanfix/internal/database"
	"istanfix/internal/logger"
	"istanfix/internal/models"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	cfg := &config.Config{}
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "development",
		GovVerificationCode: "GOV2024",
	}
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Environment: "development"})
}

// insertUser creates a user directly, bypassing signup validation.
func insertUser(t *testing.T, db *bun.DB, name, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:           name,
		Email:          email,
		HashedPassword: "x",
		Role:           role,
	}
	_, err := db.NewInsert().Model(user).Exec(context.Background())
	require.NoError(t, err)
	return user
}

func insertCategory(t *testing.T, db *bun.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Icon: "🛠", Description: name}
	_, err := db.NewInsert().Model(category).Exec(context.Background())
	require.NoError(t, err)
	return category
}

func insertDistrict(t *testing.T, db *bun.DB, name string) *models.District {
	t.Helper()
	district := &models.District{Name: name, AreaCode: "34000"}
	_, err := db.NewInsert().Model(district).Exec(context.Background())
	require.NoError(t, err)
	return district
}

func insertNeighborhood(t *testing.T, db *bun.DB, name string, districtID int64) *models.Neighborhood {
	t.Helper()
	neighborhood := &models.Neighborhood{Name: name, DistrictID: districtID, PostalCode: "34001"}
	_, err := db.NewInsert().Model(neighborhood).Exec(context.Background())
	require.NoError(t, err)
	return neighborhood
}
