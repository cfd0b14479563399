package controllers

import (
	"strconv"
	"time"

	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/resp"
	"github.com/Subhashreel/orders/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// money goes out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// paramID parses a positive id path parameter and answers 400 otherwise.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// ====== Response DTOs ======

type RestaurantResponse struct {
	ID                  uint                `json:"id"`
	Name                string              `json:"name"`
	LocationType        entity.LocationType `json:"locationType"`
	BaseWeekdayDiscount decimal.Decimal     `json:"baseWeekdayDiscount"`
	BaseWeekendDiscount decimal.Decimal     `json:"baseWeekendDiscount"`
	BasePreparationTime int                 `json:"basePreparationTime"`
	PeakHourThreshold   int                 `json:"peakHourThreshold"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

func mapToRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:                  r.ID,
		Name:                r.Name,
		LocationType:        r.LocationType,
		BaseWeekdayDiscount: r.BaseWeekdayDiscount,
		BaseWeekendDiscount: r.BaseWeekendDiscount,
		BasePreparationTime: r.BasePreparationTime,
		PeakHourThreshold:   r.PeakHourThreshold,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

type MenuItemResponse struct {
	ID                    uint                `json:"id"`
	RestaurantID          uint                `json:"restaurantId"`
	Name                  string              `json:"name"`
	Category              entity.MenuCategory `json:"category"`
	BasePrice             decimal.Decimal     `json:"basePrice"`
	PreparationComplexity decimal.Decimal     `json:"preparationComplexity"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

func mapToMenuItemResponse(m *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:                    m.ID,
		RestaurantID:          m.RestaurantID,
		Name:                  m.Name,
		Category:              m.Category,
		BasePrice:             m.BasePrice,
		PreparationComplexity: m.PreparationComplexity,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

type OrderDetailResponse struct {
	Order         entity.Order                `json:"order"`
	Items         []repository.OrderItemView  `json:"items"`
	StatusHistory []entity.OrderStatusHistory `json:"statusHistory"`
}
