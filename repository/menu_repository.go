// repository/menu_repository.go
package repository

import (
	"github.com/Subhashreel/orders/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByName looks up the live item a restaurant sells under name.
func (r *MenuRepository) FindByName(restID uint, name string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("restaurant_id = ? AND name = ?", restID, name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs loads every item in ids with one query. Missing ids are simply
// absent from the result.
func (r *MenuRepository) FindByIDs(tx *gorm.DB, ids []uint) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []entity.MenuItem
	err := tx.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
