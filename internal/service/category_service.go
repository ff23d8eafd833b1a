package service

import (
	"fmt"
	"strings"

	"edupath/internal/domain"
	"edupath/internal/models"
	"edupath/internal/repository"

	"go.uber.org/zap"
)

type CategoryService struct {
	repo *repository.CategoryRepository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

// Create adds a named bucket to one vertical. The only validation is
// a non-empty name and a known module type; length and character
// restrictions are intentionally absent.
func (s *CategoryService) Create(name, moduleType string) (*models.ModuleCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	mt := domain.ModuleType(moduleType)
	if !mt.Valid() {
		return nil, fmt.Errorf("%w: unknown module type %q", domain.ErrValidation, moduleType)
	}
	cat := &models.ModuleCategory{Name: name, ModuleType: mt}
	if err := s.repo.Create(cat); err != nil {
		return nil, err
	}
	s.log.Info("category created",
		zap.Uint("id", cat.ID),
		zap.String("name", cat.Name),
		zap.String("module_type", string(cat.ModuleType)))
	return cat, nil
}

func (s *CategoryService) ListByModuleType(moduleType string) ([]models.ModuleCategory, error) {
	mt := domain.ModuleType(moduleType)
	if !mt.Valid() {
		return nil, fmt.Errorf("%w: unknown module type %q", domain.ErrValidation, moduleType)
	}
	return s.repo.ListByModuleType(mt)
}

func (s *CategoryService) Delete(id uint) error {
	return s.repo.Delete(id)
}
