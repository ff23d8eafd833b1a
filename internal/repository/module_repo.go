package repository

import (
	"errors"

	"edupath/internal/domain"
	"edupath/internal/models"

	"gorm.io/gorm"
)

// ListOptions filters a vertical listing. A nil Published means "all";
// the published-only default for public callers is the handler's
// decision, not the store's.
type ListOptions struct {
	Published *bool
	Category  string
}

type ModuleRepository struct {
	db       *gorm.DB
	resolver *Resolver
}

func NewModuleRepository(db *gorm.DB, resolver *Resolver) *ModuleRepository {
	return &ModuleRepository{db: db, resolver: resolver}
}

// Create inserts the entry. The slug unique index is global across
// verticals, so two entries with the same title in different verticals
// still collide; the storage engine serializes concurrent writers and
// the loser gets ErrDuplicateSlug.
func (r *ModuleRepository) Create(m *models.ModuleEntry) error {
	if err := r.db.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *ModuleRepository) GetByID(id uint) (*models.ModuleEntry, error) {
	var m models.ModuleEntry
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetBySlugOrID resolves a route identifier that may be a primary key,
// a stored slug, or a slugified title.
func (r *ModuleRepository) GetBySlugOrID(identifier string) (*models.ModuleEntry, error) {
	return Resolve[models.ModuleEntry](r.resolver, identifier, "title")
}

func (r *ModuleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ModuleEntry{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Update applies a partial patch by column name and returns the
// updated entry. Callers never put "slug" in the patch: a renamed
// entry keeps its old URL.
func (r *ModuleRepository) Update(id uint, patch map[string]any) (*models.ModuleEntry, error) {
	m, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return m, nil
	}
	if err := r.db.Model(m).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes the entry outright. No soft delete, no cascade.
func (r *ModuleRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ModuleEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ModuleRepository) ListByModuleType(moduleType domain.ModuleType, opts ListOptions) ([]models.ModuleEntry, error) {
	q := r.db.Where("module_type = ?", moduleType)
	if opts.Published != nil {
		q = q.Where("published = ?", *opts.Published)
	}
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	var list []models.ModuleEntry
	err := q.Find(&list).Error
	return list, err
}
