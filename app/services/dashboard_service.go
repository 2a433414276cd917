package services

import (
	"github.com/shopspring/decimal"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
)

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	Revenue          decimal.Decimal  `json:"revenue"`
	OrderCount       int64            `json:"orderCount"`
	ProductCount     int64            `json:"productCount"`
	SubscriberCount  int64            `json:"subscriberCount"`
	AverageOrder     decimal.Decimal  `json:"averageOrderValue"`
	FulfillmentRate  float64          `json:"fulfillmentRate"`
	RecentOrders     []models.Order   `json:"recentOrders"`
	LowStockProducts []models.Product `json:"lowStockProducts"`
}

// DashboardService computes the admin overview aggregates.
type DashboardService struct {
	orders      *repositories.OrderRepository
	products    *repositories.ProductRepository
	subscribers *repositories.NewsletterRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		orders:      repositories.NewOrderRepository(),
		products:    repositories.NewProductRepository(),
		subscribers: repositories.NewNewsletterRepository(),
	}
}

// Stats assembles the overview. Ratios guard the zero-order case: both the
// average order value and the fulfillment rate are 0 when no orders exist.
func (s *DashboardService) Stats() (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Revenue, err = s.orders.Revenue(); err != nil {
		return stats, err
	}
	if stats.OrderCount, err = s.orders.Count(); err != nil {
		return stats, err
	}
	if stats.ProductCount, err = s.products.Count(); err != nil {
		return stats, err
	}
	if stats.SubscriberCount, err = s.subscribers.Count(); err != nil {
		return stats, err
	}

	stats.AverageOrder = decimal.Zero
	stats.FulfillmentRate = 0
	if stats.OrderCount > 0 {
		stats.AverageOrder = stats.Revenue.Div(decimal.NewFromInt(stats.OrderCount)).Round(2)

		fulfilled, err := s.orders.CountNonPending()
		if err != nil {
			return stats, err
		}
		stats.FulfillmentRate = float64(fulfilled) / float64(stats.OrderCount) * 100
	}

	if stats.RecentOrders, err = s.orders.Recent(); err != nil {
		return stats, err
	}
	if stats.LowStockProducts, err = s.products.LowStock(); err != nil {
		return stats, err
	}
	return stats, nil
}
