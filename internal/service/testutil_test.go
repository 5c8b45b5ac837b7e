package service_test

import (
	"fmt"
	"testing"

	"wearspace-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database. The DSN is keyed
// by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.Product{},
		&model.Transaction{},
		&model.Favorite{},
		&model.Inspiration{},
	))
	return db
}

func seedBrand(t *testing.T, db *gorm.DB, name string) *model.Brand {
	t.Helper()
	brand := &model.Brand{Name: name}
	require.NoError(t, db.Create(brand).Error)
	return brand
}

func seedProduct(t *testing.T, db *gorm.DB, brandID uuid.UUID, stock int) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:    "Air Max 270",
		BrandID: brandID,
		Price:   150.00,
		Stock:   stock,
		Sizes:   model.StringList{"US 8", "US 9"},
		Colors:  model.StringList{"Black"},
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}
