package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/orm"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists an order and then its line items. The writes are
// sequential, not transactional: a failure between them leaves an order
// without items, which the detail view tolerates.
func (r *OrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := orm.DB().Create(order); err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) == 0 {
		return nil
	}
	return orm.DB().Create(&items)
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id string) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).Where("id = ?", id).First(&order)
	return order, err
}

// All returns every order, newest first.
func (r *OrderRepository) All() ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Order("created_at DESC").Get(&orders)
	return orders, err
}

// Paginate returns one page of orders, newest first.
func (r *OrderRepository) Paginate(page, limit int) ([]models.Order, orm.Pagination, error) {
	var orders []models.Order
	pagination, err := orm.DB().Model(&models.Order{}).
		Order("created_at DESC").
		GetWithPagination(&orders, page, limit)
	return orders, pagination, err
}

// Recent returns the five most recent orders.
func (r *OrderRepository) Recent() ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Order("created_at DESC").
		Limit(5).
		Get(&orders)
	return orders, err
}

// Items returns the line items belonging to an order.
func (r *OrderRepository) Items(orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := orm.DB().Model(&models.OrderItem{}).Where("order_id = ?", orderID).Get(&items)
	return items, err
}

// UpdateStatus moves an order to the given status.
func (r *OrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	return orm.DB().Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
}

// UpdateTracking sets the shipment tracking details on an order.
func (r *OrderRepository) UpdateTracking(id, trackingNumber, carrier string) error {
	return orm.DB().Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tracking_number": trackingNumber,
			"carrier":         carrier,
		})
}

// Revenue sums total_amount across all orders.
func (r *OrderRepository) Revenue() (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := orm.DB().Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&row)
	return row.Total, err
}

// Count returns the total number of orders.
func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Order{}).Count(&n)
	return n, err
}

// CountNonPending returns how many orders have moved past pending.
func (r *OrderRepository) CountNonPending() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Order{}).
		Where("status <> ?", models.OrderPending).
		Count(&n)
	return n, err
}
