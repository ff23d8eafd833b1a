package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"edupath/internal/domain"
	"edupath/internal/models"
	"edupath/internal/repository"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestServices(t *testing.T) (*ModuleService, *CategoryService) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ModuleCategory{}, &models.ModuleEntry{}))

	log := zap.NewNop()
	resolver := repository.NewResolver(db, log)
	moduleSvc := NewModuleService(
		repository.NewModuleRepository(db, resolver),
		gocache.New(time.Minute, 0),
		log,
	)
	categorySvc := NewCategoryService(repository.NewCategoryRepository(db), log)
	return moduleSvc, categorySvc
}

func validInput() *CreateModuleInput {
	return &CreateModuleInput{
		ModuleType:          string(domain.ModuleStudyIndia),
		Title:               "IIT Delhi - B.Tech",
		ShortDescription:    "Premier engineering program",
		DetailedDescription: "Four-year undergraduate engineering program at IIT Delhi.",
		Category:            "Engineering",
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestServices(t)

	tests := []struct {
		name   string
		mutate func(*CreateModuleInput)
	}{
		{"missing title", func(in *CreateModuleInput) { in.Title = "" }},
		{"missing short description", func(in *CreateModuleInput) { in.ShortDescription = "" }},
		{"missing detailed description", func(in *CreateModuleInput) { in.DetailedDescription = "" }},
		{"unknown module type", func(in *CreateModuleInput) { in.ModuleType = "crypto-tips" }},
		{"title with no slug material", func(in *CreateModuleInput) { in.Title = "!!! ???" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			_, err := svc.Create(in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateDerivesSlugAndPublishGates(t *testing.T) {
	svc, catSvc := newTestServices(t)

	_, err := catSvc.Create("Engineering", string(domain.ModuleStudyIndia))
	require.NoError(t, err)

	entry, err := svc.Create(validInput())
	require.NoError(t, err)
	assert.Equal(t, "iit-delhi-b-tech", entry.Slug)
	assert.False(t, entry.Published, "entries start as drafts")

	// Draft entries stay off the public listing.
	pub, err := svc.ListPublished(string(domain.ModuleStudyIndia), "")
	require.NoError(t, err)
	assert.Empty(t, pub)

	published := true
	_, err = svc.Update(entry.ID, &UpdateModuleInput{Published: &published})
	require.NoError(t, err)

	pub, err = svc.ListPublished(string(domain.ModuleStudyIndia), "")
	require.NoError(t, err)
	require.Len(t, pub, 1)
	assert.Equal(t, "iit-delhi-b-tech", pub[0].Slug)

	// Category filter on the public listing.
	eng, err := svc.ListPublished(string(domain.ModuleStudyIndia), "Engineering")
	require.NoError(t, err)
	assert.Len(t, eng, 1)
	none, err := svc.ListPublished(string(domain.ModuleStudyIndia), "Medical")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPublishToggleIsSymmetric(t *testing.T) {
	svc, _ := newTestServices(t)

	entry, err := svc.Create(validInput())
	require.NoError(t, err)
	original := entry.Published

	on := true
	entry, err = svc.Update(entry.ID, &UpdateModuleInput{Published: &on})
	require.NoError(t, err)
	assert.True(t, entry.Published)

	off := false
	entry, err = svc.Update(entry.ID, &UpdateModuleInput{Published: &off})
	require.NoError(t, err)
	assert.Equal(t, original, entry.Published)
}

func TestUpdateTitleKeepsSlug(t *testing.T) {
	svc, _ := newTestServices(t)

	entry, err := svc.Create(validInput())
	require.NoError(t, err)

	newTitle := "IIT Delhi - B.Tech (Computer Science)"
	updated, err := svc.Update(entry.ID, &UpdateModuleInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "iit-delhi-b-tech", updated.Slug, "renames never rewrite the URL")

	blank := "   "
	_, err = svc.Update(entry.ID, &UpdateModuleInput{Title: &blank})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateSuppliedSlugAndGlobalCollision(t *testing.T) {
	svc, _ := newTestServices(t)

	in := validInput()
	in.Slug = "custom-slug"
	entry, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", entry.Slug, "a supplied slug is used as-is")

	// Same title in an unrelated vertical collides on the derived slug.
	other := validInput()
	other.ModuleType = string(domain.ModuleLoans)
	_, err = svc.Create(other)
	require.NoError(t, err)
	third := validInput()
	third.ModuleType = string(domain.ModuleMBBSIndia)
	_, err = svc.Create(third)
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
}

func TestGetBySlugOrID(t *testing.T) {
	svc, _ := newTestServices(t)

	entry, err := svc.Create(validInput())
	require.NoError(t, err)

	bySlug, err := svc.GetBySlugOrID("iit-delhi-b-tech")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, bySlug.ID)

	_, err = svc.GetBySlugOrID("no-such-thing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryServiceValidation(t *testing.T) {
	_, catSvc := newTestServices(t)

	_, err := catSvc.Create("", string(domain.ModuleLoans))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = catSvc.Create("Secured", "not-a-vertical")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = catSvc.Create("Secured", string(domain.ModuleLoans))
	require.NoError(t, err)
	_, err = catSvc.Create("Secured", string(domain.ModuleLoans))
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}
