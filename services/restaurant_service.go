// services/restaurant_service.go
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

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// UpsertRestaurantReq updates the restaurant with ID when it exists and
// inserts otherwise.
type UpsertRestaurantReq struct {
	ID                  *uint               `json:"id" binding:"omitempty,gt=0"`
	Name                string              `json:"name" binding:"required"`
	LocationType        entity.LocationType `json:"locationType" binding:"required,oneof=college workplace airport city urban"`
	BaseWeekdayDiscount decimal.Decimal     `json:"baseWeekdayDiscount"`
	BaseWeekendDiscount decimal.Decimal     `json:"baseWeekendDiscount"`
	BasePreparationTime int                 `json:"basePreparationTime" binding:"required,gt=0"`
	PeakHourThreshold   int                 `json:"peakHourThreshold" binding:"required,gt=0"`
}

var hundredPercent = decimal.NewFromInt(100)

func (r *UpsertRestaurantReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.BadRequest("restaurant name is required")
	}
	if !r.LocationType.Valid() {
		return apperr.BadRequest("invalid location type %q", r.LocationType)
	}
	for name, v := range map[string]decimal.Decimal{
		"baseWeekdayDiscount": r.BaseWeekdayDiscount,
		"baseWeekendDiscount": r.BaseWeekendDiscount,
	} {
		if v.IsNegative() || v.GreaterThan(hundredPercent) {
			return apperr.BadRequest("%s must be between 0 and 100", name)
		}
	}
	if r.BasePreparationTime <= 0 {
		return apperr.BadRequest("basePreparationTime must be greater than 0")
	}
	if r.PeakHourThreshold <= 0 {
		return apperr.BadRequest("peakHourThreshold must be greater than 0")
	}
	return nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	rests, err := s.Repo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rests, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "restaurant %d not found", id)
	}
	return r, nil
}

// Upsert reports created=true when a new row was inserted.
func (s *RestaurantService) Upsert(req *UpsertRestaurantReq) (*entity.Restaurant, bool, error) {
	if err := req.validate(); err != nil {
		return nil, false, err
	}

	rest := &entity.Restaurant{}
	created := true
	if req.ID != nil {
		// a deleted restaurant keeps its id, so reusing it restores the row
		existing, err := s.Repo.FindAnyByID(*req.ID)
		switch {
		case err == nil:
			rest, created = existing, false
		case errors.Is(err, gorm.ErrRecordNotFound):
			rest.ID = *req.ID
		default:
			return nil, false, apperr.Internal(err)
		}
	}

	rest.Name = strings.TrimSpace(req.Name)
	rest.LocationType = req.LocationType
	rest.BaseWeekdayDiscount = req.BaseWeekdayDiscount
	rest.BaseWeekendDiscount = req.BaseWeekendDiscount
	rest.BasePreparationTime = req.BasePreparationTime
	rest.PeakHourThreshold = req.PeakHourThreshold

	var err error
	switch {
	case created:
		err = s.Repo.Create(rest)
	case rest.DeletedAt.Valid:
		err = s.Repo.Restore(rest)
	default:
		err = s.Repo.Update(rest)
	}
	if err != nil {
		return nil, false, apperr.Internal(err)
	}
	return rest, created, nil
}

func (s *RestaurantService) Delete(id uint) error {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n == 0 {
		return apperr.NotFound("restaurant %d not found", id)
	}
	return nil
}
