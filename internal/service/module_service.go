package service

import (
	"fmt"
	"strings"

	"edupath/internal/domain"
	"edupath/internal/models"
	"edupath/internal/repository"
	"edupath/pkg/slug"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// CreateModuleInput is bound straight from the admin request body.
type CreateModuleInput struct {
	ModuleType          string               `json:"module_type" validate:"required"`
	Title               string               `json:"title" validate:"required"`
	ShortDescription    string               `json:"short_description" validate:"required"`
	DetailedDescription string               `json:"detailed_description" validate:"required"`
	Category            string               `json:"category"`
	CustomFields        []models.CustomField `json:"custom_fields"`
	Highlights          []string             `json:"highlights"`
	CoverImage          string               `json:"cover_image"`
	GalleryImages       []string             `json:"gallery_images"`
	Published           bool                 `json:"published"`
	Slug                string               `json:"slug"`
}

// UpdateModuleInput is a partial patch; nil fields are left untouched.
// There is deliberately no Slug and no ModuleType here: renaming an
// entry must not break its URL, and entries never move between
// verticals.
type UpdateModuleInput struct {
	Title               *string               `json:"title"`
	ShortDescription    *string               `json:"short_description"`
	DetailedDescription *string               `json:"detailed_description"`
	Category            *string               `json:"category"`
	CustomFields        *[]models.CustomField `json:"custom_fields"`
	Highlights          *[]string             `json:"highlights"`
	CoverImage          *string               `json:"cover_image"`
	GalleryImages       *[]string             `json:"gallery_images"`
	Published           *bool                 `json:"published"`
}

type ModuleService struct {
	repo     *repository.ModuleRepository
	cache    *gocache.Cache
	validate *validator.Validate
	log      *zap.Logger
}

func NewModuleService(repo *repository.ModuleRepository, cache *gocache.Cache, log *zap.Logger) *ModuleService {
	return &ModuleService{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
		log:      log,
	}
}

// Create validates the input, derives the slug from the title when
// none is supplied, and inserts the entry. A supplied slug is used
// as-is; collisions anywhere in the store fail with ErrDuplicateSlug.
func (s *ModuleService) Create(in *CreateModuleInput) (*models.ModuleEntry, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	mt := domain.ModuleType(in.ModuleType)
	if !mt.Valid() {
		return nil, fmt.Errorf("%w: unknown module type %q", domain.ErrValidation, in.ModuleType)
	}
	sl := strings.TrimSpace(in.Slug)
	if sl == "" {
		sl = slug.Make(in.Title)
	}
	if sl == "" {
		return nil, fmt.Errorf("%w: title does not produce a usable slug", domain.ErrValidation)
	}
	entry := &models.ModuleEntry{
		ModuleType:          mt,
		Title:               in.Title,
		ShortDescription:    in.ShortDescription,
		DetailedDescription: in.DetailedDescription,
		Category:            in.Category,
		CustomFields:        datatypes.NewJSONSlice(in.CustomFields),
		Highlights:          datatypes.NewJSONSlice(in.Highlights),
		CoverImage:          in.CoverImage,
		GalleryImages:       datatypes.NewJSONSlice(in.GalleryImages),
		Published:           in.Published,
		Slug:                sl,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("module entry created",
		zap.Uint("id", entry.ID),
		zap.String("module_type", string(entry.ModuleType)),
		zap.String("slug", entry.Slug))
	return entry, nil
}

// Update applies a partial patch. The slug is never recomputed, even
// when the title changes: downstream links depend on slug stability.
func (s *ModuleService) Update(id uint, in *UpdateModuleInput) (*models.ModuleEntry, error) {
	patch := map[string]any{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be blank", domain.ErrValidation)
		}
		patch["title"] = *in.Title
	}
	if in.ShortDescription != nil {
		if strings.TrimSpace(*in.ShortDescription) == "" {
			return nil, fmt.Errorf("%w: short_description cannot be blank", domain.ErrValidation)
		}
		patch["short_description"] = *in.ShortDescription
	}
	if in.DetailedDescription != nil {
		if strings.TrimSpace(*in.DetailedDescription) == "" {
			return nil, fmt.Errorf("%w: detailed_description cannot be blank", domain.ErrValidation)
		}
		patch["detailed_description"] = *in.DetailedDescription
	}
	if in.Category != nil {
		patch["category"] = *in.Category
	}
	if in.CustomFields != nil {
		patch["custom_fields"] = datatypes.NewJSONSlice(*in.CustomFields)
	}
	if in.Highlights != nil {
		patch["highlights"] = datatypes.NewJSONSlice(*in.Highlights)
	}
	if in.CoverImage != nil {
		patch["cover_image"] = *in.CoverImage
	}
	if in.GalleryImages != nil {
		patch["gallery_images"] = datatypes.NewJSONSlice(*in.GalleryImages)
	}
	if in.Published != nil {
		patch["published"] = *in.Published
	}
	entry, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.Flush()
	return entry, nil
}

func (s *ModuleService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Flush()
	s.log.Info("module entry deleted", zap.Uint("id", id))
	return nil
}

// List is the admin-facing listing: all entries by default, with
// optional published and category filters.
func (s *ModuleService) List(moduleType string, published *bool, category string) ([]models.ModuleEntry, error) {
	mt := domain.ModuleType(moduleType)
	if !mt.Valid() {
		return nil, fmt.Errorf("%w: unknown module type %q", domain.ErrValidation, moduleType)
	}
	return s.repo.ListByModuleType(mt, repository.ListOptions{Published: published, Category: category})
}

// ListPublished is the public-facing listing: published entries only,
// served through a short-lived cache that every write flushes.
func (s *ModuleService) ListPublished(moduleType, category string) ([]models.ModuleEntry, error) {
	mt := domain.ModuleType(moduleType)
	if !mt.Valid() {
		return nil, fmt.Errorf("%w: unknown module type %q", domain.ErrValidation, moduleType)
	}
	key := "modules:" + moduleType + ":" + category
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.ModuleEntry), nil
	}
	published := true
	list, err := s.repo.ListByModuleType(mt, repository.ListOptions{Published: &published, Category: category})
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, list, gocache.DefaultExpiration)
	return list, nil
}

// GetBySlugOrID resolves a public route identifier; the entry's title
// is the fallback name field for pre-slug and stale-slug links.
func (s *ModuleService) GetBySlugOrID(identifier string) (*models.ModuleEntry, error) {
	return s.repo.GetBySlugOrID(identifier)
}
