package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/apperr"
	"github.com/Subhashreel/orders/pkg/metrics"
	"github.com/Subhashreel/orders/pkg/pricing"
	"github.com/Subhashreel/orders/repository"
	"github.com/Subhashreel/orders/utils"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"gorm.io/gorm"
)

const minPhoneLength = 8

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository

	// Clock and Location define "now" for weekends and peak hours.
	Clock    func() time.Time
	Location *time.Location
	Policy   TransitionPolicy

	locks   *utils.KeyedMutex
	breaker *gobreaker.CircuitBreaker
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	menuRepo *repository.MenuRepository,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		RestRepo: restRepo,
		MenuRepo: menuRepo,
		Clock:    time.Now,
		Location: time.Local,
		Policy:   PermitAny(),
		locks:    utils.NewKeyedMutex(),
		breaker:  newStoreBreaker("order-store"),
	}
}

func (s *OrderService) now() time.Time {
	return s.Clock().In(s.Location)
}

// ----- DTOs from Controller -----
type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required,gt=0"`
	Quantity   int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderReq struct {
	RestaurantID  uint          `json:"restaurantId" binding:"required,gt=0"`
	CustomerName  string        `json:"customerName" binding:"required,min=1"`
	CustomerPhone string        `json:"customerPhone" binding:"required,min=8"`
	Items         []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderRes struct {
	OrderID                  uint            `json:"orderId"`
	Subtotal                 decimal.Decimal `json:"subtotal"`
	DiscountPercentage       decimal.Decimal `json:"discountPercentage"`
	DiscountAmount           decimal.Decimal `json:"discountAmount"`
	TotalAmount              decimal.Decimal `json:"totalAmount"`
	EstimatedPreparationTime int             `json:"estimatedPreparationTime"`
	IsPeakHour               bool            `json:"isPeakHour"`
}

// ----- Pricing -----

type PricedLine struct {
	MenuItemID uint
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Complexity decimal.Decimal
}

// PricedOrder is a fully priced cart that has not been stored yet.
type PricedOrder struct {
	RestaurantID       uint
	Lines              []PricedLine
	Subtotal           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TotalAmount        decimal.Decimal
	EstimatedPrepTime  int
	IsPeakHour         bool
}

func validateItems(items []OrderItemIn) error {
	if len(items) == 0 {
		return apperr.BadRequest("at least one item is required")
	}
	for i, it := range items {
		if it.MenuItemID == 0 {
			return apperr.BadRequest("items[%d]: menuItemId must be greater than 0", i)
		}
		if it.Quantity <= 0 {
			return apperr.BadRequest("items[%d]: quantity must be greater than 0", i)
		}
	}
	return nil
}

// PriceOrder resolves the restaurant and every requested menu item through
// tx and computes subtotal, discount, totals and the preparation estimate as
// of now. It only reads. Any unresolved id aborts with NotFound.
func (s *OrderService) PriceOrder(tx *gorm.DB, restaurantID uint, items []OrderItemIn, now time.Time) (*PricedOrder, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	rest, err := s.RestRepo.FindForOrder(tx, restaurantID)
	if err != nil {
		return nil, notFoundOr(err, "restaurant %d not found", restaurantID)
	}

	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, it := range items {
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}
	menu, err := s.MenuRepo.FindByIDs(tx, ids)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("load menu items: %w", err))
	}
	byID := make(map[uint]entity.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	out := &PricedOrder{RestaurantID: restaurantID, Lines: make([]PricedLine, 0, len(items))}
	prepLines := make([]pricing.Line, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		m, ok := byID[it.MenuItemID]
		if !ok || m.RestaurantID != restaurantID {
			return nil, apperr.NotFound("menu item %d not found in restaurant %d", it.MenuItemID, restaurantID)
		}
		lineTotal := m.BasePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		out.Lines = append(out.Lines, PricedLine{
			MenuItemID: m.ID,
			Quantity:   it.Quantity,
			UnitPrice:  m.BasePrice,
			TotalPrice: lineTotal,
			Complexity: m.PreparationComplexity,
		})
		prepLines = append(prepLines, pricing.Line{Quantity: it.Quantity, Complexity: m.PreparationComplexity})
	}

	from, to := pricing.HourWindow(now)
	hourly, err := s.Repo.CountCreatedBetween(tx, restaurantID, from, to)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("count hourly orders: %w", err))
	}
	out.IsPeakHour = pricing.IsPeakHour(hourly, rest.PeakHourThreshold)

	out.Subtotal = subtotal
	out.DiscountPercentage = pricing.DiscountPercentage(*rest, now)
	out.DiscountAmount, out.TotalAmount = pricing.Totals(subtotal, out.DiscountPercentage)
	out.EstimatedPrepTime = pricing.PreparationTime(rest.BasePreparationTime, prepLines, out.IsPeakHour)
	return out, nil
}

// ----- Create -----

// Create prices and stores an order with its line items and the initial
// pending history entry in one transaction. Submissions for the same
// restaurant run one at a time so each sees a consistent hourly count.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error) {
	out, err := s.create(ctx, req)
	if err != nil {
		metrics.OrdersRejected.WithLabelValues(apperr.KindOf(err).String()).Inc()
		entry := log.WithFields(log.Fields{"restaurant_id": req.RestaurantID}).WithError(err)
		if apperr.KindOf(err) == apperr.KindInternal {
			entry.Error("order creation failed")
		} else {
			entry.Info("order rejected")
		}
		return nil, err
	}

	total, _ := out.TotalAmount.Float64()
	metrics.OrdersCreated.WithLabelValues(strconv.FormatBool(out.IsPeakHour)).Inc()
	metrics.OrderValue.Observe(total)
	log.WithFields(log.Fields{
		"order_id":      out.OrderID,
		"restaurant_id": req.RestaurantID,
		"total":         out.TotalAmount.String(),
		"peak_hour":     out.IsPeakHour,
		"prep_minutes":  out.EstimatedPreparationTime,
	}).Info("order created")
	return out, nil
}

func (s *OrderService) create(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error) {
	if req.RestaurantID == 0 {
		return nil, apperr.BadRequest("restaurantId must be greater than 0")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, apperr.BadRequest("customer name is required")
	}
	if len(req.CustomerPhone) < minPhoneLength {
		return nil, apperr.BadRequest("customer phone must be at least %d characters", minPhoneLength)
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(req.RestaurantID)
	defer unlock()

	now := s.now()
	var out CreateOrderRes
	err := runGuarded(s.breaker, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			priced, err := s.PriceOrder(tx, req.RestaurantID, req.Items, now)
			if err != nil {
				return err
			}

			createdAt := now.UTC()
			order := entity.Order{
				RestaurantID:             req.RestaurantID,
				CustomerName:             strings.TrimSpace(req.CustomerName),
				CustomerPhone:            req.CustomerPhone,
				Status:                   entity.StatusPending,
				Subtotal:                 priced.Subtotal,
				DiscountPercentage:       priced.DiscountPercentage,
				DiscountAmount:           priced.DiscountAmount,
				TotalAmount:              priced.TotalAmount,
				EstimatedPreparationTime: priced.EstimatedPrepTime,
				CreatedAt:                createdAt,
				UpdatedAt:                createdAt,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return apperr.Internal(fmt.Errorf("insert order: %w", err))
			}

			items := make([]entity.OrderItem, 0, len(priced.Lines))
			for _, l := range priced.Lines {
				items = append(items, entity.OrderItem{
					OrderID:    order.ID,
					MenuItemID: l.MenuItemID,
					Quantity:   l.Quantity,
					UnitPrice:  l.UnitPrice,
					TotalPrice: l.TotalPrice,
					CreatedAt:  createdAt,
				})
			}
			if err := s.Repo.CreateOrderItems(tx, items); err != nil {
				return apperr.Internal(fmt.Errorf("insert order items: %w", err))
			}

			if err := s.Repo.AppendStatusHistory(tx, &entity.OrderStatusHistory{
				OrderID:   order.ID,
				NewStatus: entity.StatusPending,
				ChangedAt: createdAt,
			}); err != nil {
				return apperr.Internal(fmt.Errorf("insert status history: %w", err))
			}

			out = CreateOrderRes{
				OrderID:                  order.ID,
				Subtotal:                 priced.Subtotal,
				DiscountPercentage:       priced.DiscountPercentage,
				DiscountAmount:           priced.DiscountAmount,
				TotalAmount:              priced.TotalAmount,
				EstimatedPreparationTime: priced.EstimatedPrepTime,
				IsPeakHour:               priced.IsPeakHour,
			}
			return nil
		})
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &out, nil
}

// ----- Detail & List -----

type OrderDetail struct {
	Order         entity.Order
	Items         []repository.OrderItemView
	StatusHistory []entity.OrderStatusHistory
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, notFoundOr(err, "order %d not found", orderID)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	history, err := s.Repo.GetStatusHistory(o.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &OrderDetail{Order: *o, Items: items, StatusHistory: history}, nil
}

// ListForRestaurant filters by status and by calendar date (YYYY-MM-DD in
// the business timezone); empty filters are ignored.
func (s *OrderService) ListForRestaurant(restID uint, status, date string) ([]entity.Order, error) {
	var f repository.OrderFilter
	if status != "" {
		st := entity.OrderStatus(status)
		if !st.Valid() {
			return nil, apperr.BadRequest("invalid status %q", status)
		}
		f.Status = &st
	}
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, s.Location)
		if err != nil {
			return nil, apperr.BadRequest("date must be in YYYY-MM-DD format")
		}
		from, to := pricing.DayWindow(day)
		f.From, f.To = &from, &to
	}

	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.NotFound("restaurant %d not found", restID)
	}

	orders, err := s.Repo.ListForRestaurant(restID, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}
