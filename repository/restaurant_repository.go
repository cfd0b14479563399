// repository/restaurant_repository.go
package repository

import (
	"github.com/Subhashreel/orders/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("id").Find(&rests).Error
	return rests, err
}

// FindByID returns gorm.ErrRecordNotFound when the restaurant is missing.
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindForOrder reads the restaurant inside tx, holding a row lock on
// postgres so order creations for one restaurant queue behind each other.
func (r *RestaurantRepository) FindForOrder(tx *gorm.DB, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := forUpdate(tx).First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// FindAnyByID also returns soft-deleted restaurants.
func (r *RestaurantRepository) FindAnyByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Unscoped().First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// Restore saves rest and clears its soft-delete marker.
func (r *RestaurantRepository) Restore(rest *entity.Restaurant) error {
	rest.DeletedAt = gorm.DeletedAt{}
	return r.DB.Unscoped().Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Restaurant{}, id)
	return res.RowsAffected, res.Error
}
