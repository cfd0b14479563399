// services/menu_service.go
package services

import (
	"errors"
	"strings"

	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/apperr"
	"github.com/Subhashreel/orders/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

type UpsertMenuItemReq struct {
	ID                    *uint               `json:"id" binding:"omitempty,gt=0"`
	RestaurantID          uint                `json:"restaurantId" binding:"required,gt=0"`
	Name                  string              `json:"name" binding:"required"`
	Category              entity.MenuCategory `json:"category" binding:"required,oneof=appetizer main dessert beverage"`
	BasePrice             decimal.Decimal     `json:"basePrice"`
	PreparationComplexity decimal.Decimal     `json:"preparationComplexity"`
}

func (r *UpsertMenuItemReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.BadRequest("menu item name is required")
	}
	if !r.Category.Valid() {
		return apperr.BadRequest("invalid menu category %q", r.Category)
	}
	if !r.BasePrice.IsPositive() {
		return apperr.BadRequest("basePrice must be greater than 0")
	}
	if !r.PreparationComplexity.IsPositive() {
		return apperr.BadRequest("preparationComplexity must be greater than 0")
	}
	if r.PreparationComplexity.GreaterThan(entity.MaxPreparationComplexity) {
		return apperr.BadRequest("preparationComplexity must be less than or equal to %s", entity.MaxPreparationComplexity)
	}
	return nil
}

func (s *MenuService) ListByRestaurant(restID uint) ([]entity.MenuItem, error) {
	items, err := s.Repo.FindByRestaurant(restID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// Upsert updates the item named by ID, or else the restaurant's item with
// the same name, or inserts a new one. created reports an insert.
func (s *MenuService) Upsert(req *UpsertMenuItemReq) (*entity.MenuItem, bool, error) {
	if err := req.validate(); err != nil {
		return nil, false, err
	}
	ok, err := s.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		return nil, false, apperr.Internal(err)
	}
	if !ok {
		return nil, false, apperr.NotFound("restaurant %d not found", req.RestaurantID)
	}

	name := strings.TrimSpace(req.Name)
	var item *entity.MenuItem
	if req.ID != nil {
		item, err = s.Repo.FindByID(*req.ID)
		if err != nil {
			return nil, false, notFoundOr(err, "menu item %d not found", *req.ID)
		}
		if item.RestaurantID != req.RestaurantID {
			return nil, false, apperr.NotFound("menu item %d not found in restaurant %d", *req.ID, req.RestaurantID)
		}
	} else {
		item, err = s.Repo.FindByName(req.RestaurantID, name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.Internal(err)
		}
	}

	created := item == nil
	if created {
		item = &entity.MenuItem{}
	}
	item.RestaurantID = req.RestaurantID
	item.Name = name
	item.Category = req.Category
	item.BasePrice = req.BasePrice
	item.PreparationComplexity = req.PreparationComplexity

	if created {
		err = s.Repo.Create(item)
	} else {
		err = s.Repo.Update(item)
	}
	if err != nil {
		return nil, false, apperr.Internal(err)
	}
	return item, created, nil
}

func (s *MenuService) Delete(id uint) error {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n == 0 {
		return apperr.NotFound("menu item %d not found", id)
	}
	return nil
}
