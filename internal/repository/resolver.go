package repository

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"edupath/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// columnShape guards name fields interpolated into SQL.
var columnShape = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Resolver looks a record up by primary key, stored slug, or a
// slug-shaped rendering of its display name, in that order. One route
// parameter can therefore serve three identifier shapes, and links
// minted before slugs existed (or that drifted from the current title)
// keep working.
type Resolver struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewResolver(db *gorm.DB, log *zap.Logger) *Resolver {
	return &Resolver{db: db, log: log}
}

// Resolve returns the first match for identifier, trying primary key,
// then exact slug, then a case-insensitive anchored match of the
// hyphen-to-whitespace pattern against nameField. It is read-only and
// never surfaces a data-layer error: every failure, storage errors
// included, is reported as domain.ErrNotFound so callers can render a
// plain "not found" state.
func Resolve[T any](r *Resolver, identifier, nameField string) (*T, error) {
	if identifier == "" || !columnShape.MatchString(nameField) {
		return nil, domain.ErrNotFound
	}
	if n, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		var row T
		err := r.db.First(&row, "id = ?", n).Error
		if err == nil {
			return &row, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("resolver: primary key lookup failed",
				zap.String("identifier", identifier), zap.Error(err))
			return nil, domain.ErrNotFound
		}
	}
	var row T
	err := r.db.Where("slug = ?", identifier).First(&row).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Debug("resolver: slug lookup failed",
			zap.String("identifier", identifier), zap.Error(err))
		return nil, domain.ErrNotFound
	}
	return resolveByName[T](r, identifier, nameField)
}

// resolveByName is the backward-compatibility fallback: hyphens in the
// identifier stand for runs of whitespace in the stored name. A LIKE
// query narrows the candidate set; the anchored regexp makes the
// decision, so behavior is identical across storage engines. When two
// names normalize to the same pattern, whichever row the store returns
// first wins; that non-determinism is accepted.
func resolveByName[T any](r *Resolver, identifier, nameField string) (*T, error) {
	segs := strings.Split(identifier, "-")
	for i := range segs {
		segs[i] = regexp.QuoteMeta(segs[i])
	}
	re, err := regexp.Compile("(?i)^" + strings.Join(segs, `\s+`) + "$")
	if err != nil {
		return nil, domain.ErrNotFound
	}
	like := strings.ReplaceAll(identifier, "-", "%")

	var candidates []map[string]any
	err = r.db.Model(new(T)).
		Select([]string{"id", nameField}).
		Where(nameField+" LIKE ?", like).
		Limit(64).
		Find(&candidates).Error
	if err != nil {
		r.log.Debug("resolver: name fallback query failed",
			zap.String("identifier", identifier), zap.Error(err))
		return nil, domain.ErrNotFound
	}
	for _, c := range candidates {
		name, _ := c[nameField].(string)
		if !re.MatchString(name) {
			continue
		}
		var row T
		if err := r.db.First(&row, "id = ?", c["id"]).Error; err == nil {
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}
