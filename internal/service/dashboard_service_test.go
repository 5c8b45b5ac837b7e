package service_test

import (
	"testing"

	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewDashboardService(repository.NewTransactionRepo(db))

	brand := seedBrand(t, db, "Nike")
	seedProduct(t, db, brand.ID, 50)
	lowStock := seedProduct(t, db, brand.ID, 3)

	statuses := []model.TransactionStatus{
		model.StatusPending,
		model.StatusPending,
		model.StatusSuccess,
		model.StatusCancelled,
	}
	for _, status := range statuses {
		tx := &model.Transaction{
			ProductID:         lowStock.ID,
			CustomerName:      "John Doe",
			ShippingAddress:   "123 Main St",
			PaymentMethod:     "Credit Card",
			TransactionStatus: status,
			PurchasedSize:     "M",
			PurchasedColor:    "Black",
		}
		require.NoError(t, db.Create(tx).Error)
	}

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalBrands)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(4), stats.TotalTransactions)
	assert.Equal(t, int64(2), stats.PendingCount)
	assert.Equal(t, int64(1), stats.SuccessCount)
	assert.Equal(t, int64(1), stats.CancelledCount)
}
