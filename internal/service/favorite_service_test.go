package service_test

import (
	"testing"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFavoriteService(db *gorm.DB) service.FavoriteService {
	return service.NewFavoriteService(
		repository.NewFavoriteRepo(db),
		repository.NewProductRepo(db),
		repository.NewUserRepo(db),
	)
}

func TestFavoriteRoundtrip(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)
	user := seedUser(t, db, "customer@wearspace.com")

	require.NoError(t, svc.Add(user.ID, product.ID))

	products, err := svc.ListProducts(user.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)

	require.NoError(t, svc.Remove(user.ID, product.ID))

	products, err = svc.ListProducts(user.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFavoriteDuplicateAdd(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)
	user := seedUser(t, db, "customer@wearspace.com")

	require.NoError(t, svc.Add(user.ID, product.ID))

	err := svc.Add(user.ID, product.ID)
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))
}

func TestFavoriteCompositeKeyBackstop(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewFavoriteRepo(db)
	svc := newFavoriteService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)
	user := seedUser(t, db, "customer@wearspace.com")

	// Insert langsung lewat repo, melewati pre-check service
	require.NoError(t, repo.Create(&model.Favorite{UserID: user.ID, ProductID: product.ID}))

	// The composite primary key surfaces as a translated duplicate error
	err := repo.Create(&model.Favorite{UserID: user.ID, ProductID: product.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// And the service classifies the duplicate pair as a conflict
	err = svc.Add(user.ID, product.ID)
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))
}

func TestFavoriteAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)

	user := seedUser(t, db, "customer@wearspace.com")

	err := svc.Add(user.ID, uuid.New())
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestFavoriteRemoveNonexistent(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)
	user := seedUser(t, db, "customer@wearspace.com")

	err := svc.Remove(user.ID, product.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
