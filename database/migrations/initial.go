package migrations

import (
	"gorm.io/gorm"

	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/migration"
)

func init() {
	migration.Register("20260115000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260115000001_create_collections_table", &CreateCollectionsTable{})
	migration.Register("20260115000002_create_products_table", &CreateProductsTable{})
	migration.Register("20260115000003_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260115000004_create_order_items_table", &CreateOrderItemsTable{})
	migration.Register("20260115000005_create_newsletter_subscribers_table", &CreateNewsletterSubscribersTable{})
	migration.Register("20260115000006_create_editorials_table", &CreateEditorialsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: collections --------

type CreateCollectionsTable struct{}

func (m *CreateCollectionsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Collection{})
}

func (m *CreateCollectionsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("collections")
}

// -------- 0003: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0004: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- 0005: order items --------
// No FK cascade from order_items to products: a deleted product leaves
// the snapshot row behind.

type CreateOrderItemsTable struct{}

func (m *CreateOrderItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{})
}

func (m *CreateOrderItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items")
}

// -------- 0006: newsletter subscribers --------

type CreateNewsletterSubscribersTable struct{}

func (m *CreateNewsletterSubscribersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.NewsletterSubscriber{})
}

func (m *CreateNewsletterSubscribersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("newsletter_subscribers")
}

// -------- 0007: editorials --------

type CreateEditorialsTable struct{}

func (m *CreateEditorialsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Editorial{})
}

func (m *CreateEditorialsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("editorials")
}
