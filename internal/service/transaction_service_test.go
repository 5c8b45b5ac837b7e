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

func newTransactionService(db *gorm.DB) service.TransactionService {
	return service.NewTransactionService(
		repository.NewTransactionRepo(db),
		repository.NewProductRepo(db),
		db,
	)
}

func checkoutRequest(productID string) *service.CreateTransactionRequest {
	return &service.CreateTransactionRequest{
		ProductID:       productID,
		CustomerName:    "John Doe",
		ShippingAddress: "123 Main St, Anytown, USA",
		PaymentMethod:   "Credit Card",
		PurchasedSize:   "US 9",
		PurchasedColor:  "Black",
	}
}

func TestCreateTransactionDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)

	tx, err := svc.Create(checkoutRequest(product.ID.String()), nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, tx.TransactionStatus)
	assert.Nil(t, tx.UserID, "guest checkout has no user")
	assert.Equal(t, product.ID, tx.ProductID)
	require.NotNil(t, tx.Product)
	assert.Equal(t, 4, tx.Product.Stock)
}

func TestCreateTransactionForUser(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)
	user := seedUser(t, db, "customer@wearspace.com")

	tx, err := svc.Create(checkoutRequest(product.ID.String()), &user.ID)
	require.NoError(t, err)

	require.NotNil(t, tx.UserID)
	assert.Equal(t, user.ID, *tx.UserID)
}

func TestCreateTransactionOutOfStock(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 0)

	_, err := svc.Create(checkoutRequest(product.ID.String()), nil)
	assert.True(t, apperr.Is(err, apperr.CodeOutOfStock))

	// Failed checkout leaves everything untouched
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 0, reloaded.Stock)

	var count int64
	db.Model(&model.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateTransactionLastUnit(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 1)

	_, err := svc.Create(checkoutRequest(product.ID.String()), nil)
	require.NoError(t, err)

	_, err = svc.Create(checkoutRequest(product.ID.String()), nil)
	assert.True(t, apperr.Is(err, apperr.CodeOutOfStock))

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 0, reloaded.Stock)
}

func TestCreateTransactionMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.Create(&service.CreateTransactionRequest{
		ProductID:    uuid.New().String(),
		CustomerName: "John Doe",
	}, nil)

	assert.True(t, apperr.Is(err, apperr.CodeMissingField))
	assert.Contains(t, err.Error(), "shipping_address")
	assert.Contains(t, err.Error(), "payment_method")
	assert.Contains(t, err.Error(), "purchased_size")
	assert.Contains(t, err.Error(), "purchased_color")
}

func TestCreateTransactionMalformedProductID(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.Create(checkoutRequest("not-a-uuid"), nil)
	assert.True(t, apperr.Is(err, apperr.CodeMalformedID))
}

func TestCreateTransactionUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.Create(checkoutRequest(uuid.New().String()), nil)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidReference))
}

func TestUpdateTransactionStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)

	created, err := svc.Create(checkoutRequest(product.ID.String()), nil)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(created.ID, model.StatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, updated.TransactionStatus)

	// Same value again is a no-op, not an error
	updated, err = svc.UpdateStatus(created.ID, model.StatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, updated.TransactionStatus)
}

func TestUpdateTransactionStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)

	created, err := svc.Create(checkoutRequest(product.ID.String()), nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, model.TransactionStatus("Shipped"))
	assert.True(t, apperr.Is(err, apperr.CodeInvalidEnum))

	reloaded, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, reloaded.TransactionStatus)
}

func TestUpdateTransactionStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	_, err := svc.UpdateStatus(uuid.New(), model.StatusSuccess)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	// Unknown id wins over a bad status value
	_, err = svc.UpdateStatus(uuid.New(), model.TransactionStatus("Shipped"))
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestDeleteTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := newTransactionService(db)

	brand := seedBrand(t, db, "Nike")
	product := seedProduct(t, db, brand.ID, 5)

	created, err := svc.Create(checkoutRequest(product.ID.String()), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	// Deleting a transaction never restocks the product
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 4, reloaded.Stock)
}
