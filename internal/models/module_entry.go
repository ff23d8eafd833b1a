package models

import (
	"time"

	"edupath/internal/domain"

	"gorm.io/datatypes"
)

// CustomField is one key/value attribute on a module entry. The slice
// keeps insertion order, which is the order the admin UI renders. This
// is what lets structurally different verticals (loan interest rates,
// job salary ranges, course fees) share one table.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ModuleEntry is one piece of content belonging to exactly one
// vertical. Relations to categories are by value (the Category string),
// not by foreign key.
type ModuleEntry struct {
	ID                  uint                             `gorm:"primaryKey" json:"id"`
	ModuleType          domain.ModuleType                `gorm:"size:50;not null;index" json:"module_type"`
	Title               string                           `gorm:"size:255;not null" json:"title"`
	ShortDescription    string                           `gorm:"size:512;not null" json:"short_description"`
	DetailedDescription string                           `gorm:"type:text;not null" json:"detailed_description"`
	Category            string                           `gorm:"size:100;index" json:"category"`
	CustomFields        datatypes.JSONSlice[CustomField] `json:"custom_fields"`
	Highlights          datatypes.JSONSlice[string]      `json:"highlights"`
	CoverImage          string                           `gorm:"size:512" json:"cover_image"`
	GalleryImages       datatypes.JSONSlice[string]      `json:"gallery_images"`
	Published           bool                             `gorm:"default:false;index" json:"published"`
	// Slug is unique across every vertical, not scoped per module_type.
	// Computed once at creation; a later title edit does not touch it.
	Slug      string    `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ModuleEntry) TableName() string { return "module_entries" }
