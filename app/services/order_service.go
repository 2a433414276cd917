package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/app/repositories"
	"github.com/Bamimore2000/borokini/pkg/metrics"
	"github.com/Bamimore2000/borokini/pkg/orm"
)

// ErrEmptyOrder is returned when a checkout payload carries no items.
var ErrEmptyOrder = errors.New("order has no items")

// ErrUnknownProduct is returned when a checkout line references a product
// that does not exist. The order is rejected before any write.
var ErrUnknownProduct = errors.New("unknown product in order")

// CheckoutItem is one line of a checkout payload.
type CheckoutItem struct {
	ProductID    string  `json:"productId" validate:"required,uuid"`
	Quantity     int     `json:"quantity"  validate:"required,gte=1"`
	SelectedSize *string `json:"selectedSize"`
}

// CheckoutInput is the typed payload for order creation.
type CheckoutInput struct {
	Items      []CheckoutItem `json:"items"`
	UserID     *string        `json:"userId"     validate:"nullable,uuid"`
	GuestEmail *string        `json:"guestEmail" validate:"nullable,email"`
}

// OrderDetailItem pairs a line item with what is known about its product.
// Product is nil when the product has since been deleted.
type OrderDetailItem struct {
	models.OrderItem
	ProductName string          `json:"productName"`
	Product     *models.Product `json:"product"`
}

// OrderService handles checkout and admin order management.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Checkout creates an order from item tuples. Each line snapshots the
// product's current price into PriceAtPurchase and the total is summed in
// decimal arithmetic. Stock is neither checked nor decremented here.
func (s *OrderService) Checkout(in CheckoutInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.FindByIDs(ids)
	if err != nil {
		return models.Order{}, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		product, ok := byID[line.ProductID]
		if !ok {
			return models.Order{}, fmt.Errorf("%w: %s", ErrUnknownProduct, line.ProductID)
		}
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
		items = append(items, models.OrderItem{
			ProductID:       product.ID,
			Quantity:        qty,
			PriceAtPurchase: product.Price,
			SelectedSize:    line.SelectedSize,
		})
	}

	order := models.Order{
		UserID:      in.UserID,
		GuestEmail:  in.GuestEmail,
		TotalAmount: total,
		Status:      models.OrderPending,
	}
	if err := s.orders.Create(&order, items); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

// All lists every order, newest first.
func (s *OrderService) All() ([]models.Order, error) {
	return s.orders.All()
}

// Paginate lists one page of orders, newest first.
func (s *OrderService) Paginate(page, limit int) ([]models.Order, orm.Pagination, error) {
	return s.orders.Paginate(page, limit)
}

// Detail returns an order with its line items joined to their products.
// Lines whose product was deleted keep the snapshot and render as
// "Deleted Product".
func (s *OrderService) Detail(id string) (models.Order, []OrderDetailItem, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return order, nil, err
	}

	items, err := s.orders.Items(id)
	if err != nil {
		return order, nil, err
	}

	detail := make([]OrderDetailItem, 0, len(items))
	for _, item := range items {
		d := OrderDetailItem{OrderItem: item, ProductName: "Deleted Product"}
		if product, err := s.products.FindByID(item.ProductID); err == nil {
			p := product
			d.Product = &p
			d.ProductName = p.Name
		}
		detail = append(detail, d)
	}
	return order, detail, nil
}

// UpdateStatus moves an order to any member of the status enum. Unknown
// statuses are rejected; transitions between known ones are not restricted.
func (s *OrderService) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("invalid order status %q", status)
	}
	if _, err := s.orders.FindByID(id); err != nil {
		return models.Order{}, err
	}
	if err := s.orders.UpdateStatus(id, status); err != nil {
		return models.Order{}, err
	}
	return s.orders.FindByID(id)
}

// UpdateTracking sets tracking number and carrier together.
func (s *OrderService) UpdateTracking(id, trackingNumber, carrier string) (models.Order, error) {
	if _, err := s.orders.FindByID(id); err != nil {
		return models.Order{}, err
	}
	if err := s.orders.UpdateTracking(id, trackingNumber, carrier); err != nil {
		return models.Order{}, err
	}
	return s.orders.FindByID(id)
}
