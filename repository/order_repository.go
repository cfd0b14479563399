package repository

import (
	"time"

	"github.com/Subhashreel/orders/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit(clause.Associations).Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// LockOrder reads the order inside tx ahead of a status change.
func (r *OrderRepository) LockOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := forUpdate(tx).Select("id", "status").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus, at time.Time) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": at}).Error
}

// CountCreatedBetween counts a restaurant's orders created in [from, to).
func (r *OrderRepository) CountCreatedBetween(tx *gorm.DB, restID uint, from, to time.Time) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restID, from.UTC(), to.UTC()).
		Count(&cnt).Error
	return cnt, err
}

type OrderFilter struct {
	Status *entity.OrderStatus
	From   *time.Time
	To     *time.Time
}

// ListForRestaurant returns newest orders first.
func (r *OrderRepository) ListForRestaurant(restID uint, f OrderFilter) ([]entity.Order, error) {
	q := r.DB.Where("restaurant_id = ?", restID)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.UTC())
	}
	var out []entity.Order
	err := q.Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, err
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&items).Error
}

// OrderItemView is an order line joined with the menu item name.
type OrderItemView struct {
	ID         uint            `json:"id"`
	MenuItemID uint            `json:"menuItemId"`
	ItemName   string          `json:"itemName"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// GetOrderItems keeps names of menu items deleted after the order was placed.
func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemView, error) {
	var out []OrderItemView
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, COALESCE(mi.name, '') AS item_name, oi.quantity, oi.unit_price, oi.total_price").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&out).Error
	return out, err
}

// ---------------- Status history ----------------

func (r *OrderRepository) AppendStatusHistory(tx *gorm.DB, h *entity.OrderStatusHistory) error {
	return tx.Omit(clause.Associations).Create(h).Error
}

func (r *OrderRepository) GetStatusHistory(orderID uint) ([]entity.OrderStatusHistory, error) {
	var out []entity.OrderStatusHistory
	err := r.DB.Where("order_id = ?", orderID).
		Order("changed_at").Order("id").
		Find(&out).Error
	return out, err
}
