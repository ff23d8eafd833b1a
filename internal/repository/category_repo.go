package repository

import (
	"errors"

	"edupath/internal/domain"
	"edupath/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts the category. Uniqueness is the compound
// (name, module_type) index, so the same name may exist in several
// verticals.
func (r *CategoryRepository) Create(cat *models.ModuleCategory) error {
	if err := r.db.Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// ListByModuleType returns categories in storage-insertion order.
func (r *CategoryRepository) ListByModuleType(moduleType domain.ModuleType) ([]models.ModuleCategory, error) {
	var list []models.ModuleCategory
	err := r.db.Where("module_type = ?", moduleType).Find(&list).Error
	return list, err
}

// Delete is unconditional: entries still labeled with this category's
// name are left as they are. Orphan labels are expected.
func (r *CategoryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ModuleCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
