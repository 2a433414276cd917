package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/services"
)

func seedOrder(t *testing.T, db *gorm.DB, total string, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		TotalAmount: decimal.RequireFromString(total),
		Status:      status,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestStatsEmptyStore(t *testing.T) {
	setupDB(t)

	stats, err := services.NewDashboardService().Stats()
	require.NoError(t, err)

	assert.True(t, stats.Revenue.IsZero())
	assert.Zero(t, stats.OrderCount)
	assert.True(t, stats.AverageOrder.IsZero(), "average of zero orders is zero, not a division error")
	assert.Zero(t, stats.FulfillmentRate)
	assert.Empty(t, stats.RecentOrders)
}

func TestStatsAggregates(t *testing.T) {
	db := setupDB(t)

	seedOrder(t, db, "100000.00", models.OrderPending)
	seedOrder(t, db, "200000.00", models.OrderPaid)
	seedOrder(t, db, "300000.00", models.OrderShipped)
	seedOrder(t, db, "400000.00", models.OrderDelivered)

	stats, err := services.NewDashboardService().Stats()
	require.NoError(t, err)

	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("1000000.00")),
		"revenue was %s", stats.Revenue)
	assert.Equal(t, int64(4), stats.OrderCount)
	assert.True(t, stats.AverageOrder.Equal(decimal.RequireFromString("250000.00")),
		"average was %s", stats.AverageOrder)
	// 3 of 4 orders moved past pending.
	assert.InDelta(t, 75.0, stats.FulfillmentRate, 0.001)
}

func TestStatsRecentOrdersCapped(t *testing.T) {
	db := setupDB(t)

	for i := 0; i < 7; i++ {
		seedOrder(t, db, "100000.00", models.OrderPending)
	}

	stats, err := services.NewDashboardService().Stats()
	require.NoError(t, err)
	assert.Len(t, stats.RecentOrders, 5)
}

func TestStatsLowStock(t *testing.T) {
	db := setupDB(t)

	seedProduct(t, db, "r1", "100.00", 1)
	seedProduct(t, db, "r2", "100.00", 5)
	seedProduct(t, db, "r3", "100.00", 6) // above threshold
	seedProduct(t, db, "n1", "100.00", 0)

	stats, err := services.NewDashboardService().Stats()
	require.NoError(t, err)

	require.Len(t, stats.LowStockProducts, 3)
	for _, p := range stats.LowStockProducts {
		assert.LessOrEqual(t, p.Stock, 5)
	}
}

func TestStatsLowStockCapped(t *testing.T) {
	db := setupDB(t)

	slugs := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	for _, slug := range slugs {
		seedProduct(t, db, slug, "100.00", 2)
	}

	stats, err := services.NewDashboardService().Stats()
	require.NoError(t, err)
	assert.Len(t, stats.LowStockProducts, 5)
}
