package models

import (
	"time"

	"edupath/internal/domain"
)

// ModuleCategory is a named bucket for ModuleEntry.Category within one
// vertical. It is an advisory label, not an enforced foreign key:
// deleting a category leaves entries that reference it untouched.
type ModuleCategory struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Name       string            `gorm:"size:100;not null;uniqueIndex:idx_module_categories_name_type" json:"name"`
	ModuleType domain.ModuleType `gorm:"size:50;not null;uniqueIndex:idx_module_categories_name_type" json:"module_type"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (ModuleCategory) TableName() string { return "module_categories" }
