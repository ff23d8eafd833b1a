package repository

import (
	"strconv"
	"testing"

	"edupath/internal/domain"
	"edupath/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newModuleRepo(db *gorm.DB) *ModuleRepository {
	return NewModuleRepository(db, NewResolver(db, zap.NewNop()))
}

func testEntry(moduleType domain.ModuleType, title, slug string) *models.ModuleEntry {
	return &models.ModuleEntry{
		ModuleType:          moduleType,
		Title:               title,
		ShortDescription:    "short",
		DetailedDescription: "detailed",
		Slug:                slug,
	}
}

func TestCreateDuplicateSlugAcrossVerticals(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	require.NoError(t, repo.Create(testEntry(domain.ModuleStudyIndia, "Harvard University", "harvard-university")))

	// Same title in a different vertical: slugs are globally unique,
	// so the second write loses.
	err := repo.Create(testEntry(domain.ModuleStudyAbroad, "Harvard University", "harvard-university"))
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
}

func TestResolvePrimaryKeyBeatsSlug(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	first := testEntry(domain.ModuleLoans, "Education Loan Guide", "education-loan-guide")
	require.NoError(t, repo.Create(first))

	// A second entry whose slug is literally the first entry's id.
	decoy := testEntry(domain.ModuleLoans, "Decoy", strconv.FormatUint(uint64(first.ID), 10))
	require.NoError(t, repo.Create(decoy))

	got, err := repo.GetBySlugOrID(strconv.FormatUint(uint64(first.ID), 10))
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "a key-shaped identifier resolves by primary key, not slug")
}

func TestResolveBySlug(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	e := testEntry(domain.ModuleMBBSIndia, "AIIMS Delhi", "aiims-delhi")
	require.NoError(t, repo.Create(e))

	got, err := repo.GetBySlugOrID("aiims-delhi")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestResolveTitleFallback(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	// Stored slug drifted from the title, as happens after a rename.
	e := testEntry(domain.ModuleStudyAbroad, "Harvard University", "legacy-harvard")
	require.NoError(t, repo.Create(e))

	got, err := repo.GetBySlugOrID("harvard-university")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID, "old links keep working via the title fallback")
}

func TestResolveMissReturnsNotFound(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	_, err := repo.GetBySlugOrID("no-such-thing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateNeverTouchesSlug(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	e := testEntry(domain.ModuleCourses, "Data Science Bootcamp", "data-science-bootcamp")
	require.NoError(t, repo.Create(e))

	updated, err := repo.Update(e.ID, map[string]any{"title": "Applied ML Bootcamp"})
	require.NoError(t, err)
	assert.Equal(t, "Applied ML Bootcamp", updated.Title)
	assert.Equal(t, "data-science-bootcamp", updated.Slug)
}

func TestUpdateMissingEntry(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	_, err := repo.Update(9999, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByModuleTypeFilters(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	a := testEntry(domain.ModuleStudyIndia, "IIT Delhi", "iit-delhi")
	a.Category = "Engineering"
	a.Published = true
	require.NoError(t, repo.Create(a))

	b := testEntry(domain.ModuleStudyIndia, "AIIMS", "aiims")
	b.Category = "Medical"
	require.NoError(t, repo.Create(b))

	c := testEntry(domain.ModuleLoans, "SBI Education Loan", "sbi-education-loan")
	c.Published = true
	require.NoError(t, repo.Create(c))

	all, err := repo.ListByModuleType(domain.ModuleStudyIndia, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published := true
	pub, err := repo.ListByModuleType(domain.ModuleStudyIndia, ListOptions{Published: &published})
	require.NoError(t, err)
	require.Len(t, pub, 1)
	assert.Equal(t, "iit-delhi", pub[0].Slug)

	eng, err := repo.ListByModuleType(domain.ModuleStudyIndia, ListOptions{Category: "Engineering"})
	require.NoError(t, err)
	require.Len(t, eng, 1)
	assert.Equal(t, "iit-delhi", eng[0].Slug)
}

func TestDelete(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	e := testEntry(domain.ModuleInternships, "Summer Internship Program", "summer-internship-program")
	require.NoError(t, repo.Create(e))

	require.NoError(t, repo.Delete(e.ID))
	_, err := repo.GetByID(e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(e.ID), domain.ErrNotFound)
}

func TestCustomFieldsRoundTrip(t *testing.T) {
	repo := newModuleRepo(newTestDB(t))

	e := testEntry(domain.ModuleLoans, "HDFC Education Loan", "hdfc-education-loan")
	e.CustomFields = []models.CustomField{
		{Key: "interest_rate", Value: "9.5%"},
		{Key: "max_amount", Value: "₹75L"},
	}
	e.Highlights = []string{"No collateral below ₹7.5L", "Tax benefit under 80E"}
	require.NoError(t, repo.Create(e))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	require.Len(t, got.CustomFields, 2)
	assert.Equal(t, "interest_rate", got.CustomFields[0].Key, "custom fields keep insertion order")
	assert.Equal(t, "₹75L", got.CustomFields[1].Value)
	assert.Len(t, got.Highlights, 2)
}
