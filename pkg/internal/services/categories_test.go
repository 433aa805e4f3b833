package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Campus Visits!!":        "campus-visits",
		"  Rivers & Rainforests": "rivers-rainforests",
		"--Ya--Cumbia--":         "ya-cumbia",
		"UPPER case":             "upper-case",
		"2019 Tour":              "2019-tour",
		"!!!":                    "",
	}

	wellFormed := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	for input, expected := range cases {
		slug := Slugify(input)
		assert.Equal(t, expected, slug, "input %q", input)
		if len(slug) > 0 {
			assert.Regexp(t, wellFormed, slug)
		}
	}
}

func TestNewCategoryDerivesSlug(t *testing.T) {
	setupTest(t)

	category, err := NewCategory(models.CategoryKindPhoto, "Campus Visits!!", "")
	require.NoError(t, err)
	assert.Equal(t, "campus-visits", category.Slug)
	assert.Equal(t, "Campus Visits!!", category.Name)

	// same slug within the same kind conflicts
	_, err = NewCategory(models.CategoryKindPhoto, "campus VISITS", "")
	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, models.CategoryKindPhoto, conflictErr.Kind)

	// but other kinds are a separate namespace
	_, err = NewCategory(models.CategoryKindVideo, "Campus Visits!!", "")
	require.NoError(t, err)
}

func TestNewCategoryRejectsEmptySlug(t *testing.T) {
	setupTest(t)

	_, err := NewCategory(models.CategoryKindVideo, "!!!", "")
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestEditCategorySlugRules(t *testing.T) {
	setupTest(t)

	category, err := NewCategory(models.CategoryKindPublication, "Field Notes", "")
	require.NoError(t, err)
	require.Equal(t, "field-notes", category.Slug)

	// a name change without an explicit slug regenerates it
	name := "Travel Diaries"
	updated, err := EditCategory(models.CategoryKindPublication, category.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "travel-diaries", updated.Slug)

	// pinning the slug keeps external links alive across renames
	name = "Travel Journals"
	slug := "travel-diaries"
	updated, err = EditCategory(models.CategoryKindPublication, category.ID, &name, &slug)
	require.NoError(t, err)
	assert.Equal(t, "travel-diaries", updated.Slug)
	assert.Equal(t, "Travel Journals", updated.Name)

	_, err = EditCategory(models.CategoryKindPublication, 9999, &name, nil)
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestEditCategorySlugConflict(t *testing.T) {
	setupTest(t)

	_, err := NewCategory(models.CategoryKindVideo, "Concerts", "")
	require.NoError(t, err)
	other, err := NewCategory(models.CategoryKindVideo, "Interviews", "")
	require.NoError(t, err)

	slug := "concerts"
	_, err = EditCategory(models.CategoryKindVideo, other.ID, nil, &slug)
	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestDeleteCategoryReferencedGuard(t *testing.T) {
	setupTest(t)

	category, err := NewCategory(models.CategoryKindPhoto, "Campus Visits!!", "")
	require.NoError(t, err)
	require.Equal(t, "campus-visits", category.Slug)

	photo, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Auditorium",
		CategoryID: category.ID,
	}, nil)
	require.NoError(t, err)

	err = DeleteCategory(models.CategoryKindPhoto, category.ID)
	var referencedErr *models.ReferencedError
	require.ErrorAs(t, err, &referencedErr)
	assert.Equal(t, models.CategoryKindPhoto, referencedErr.Kind)
	assert.Equal(t, int64(1), referencedErr.Count)

	// refused deletion is a no-op: both rows are still there
	_, err = GetCategory(models.CategoryKindPhoto, category.ID)
	require.NoError(t, err)
	_, err = GetPhoto(photo.ID)
	require.NoError(t, err)

	// unreferenced, the category goes away
	require.NoError(t, DeletePhoto(photo))
	require.NoError(t, DeleteCategory(models.CategoryKindPhoto, category.ID))

	_, err = GetCategory(models.CategoryKindPhoto, category.ID)
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestEnsureCategoryKindMismatch(t *testing.T) {
	setupTest(t)

	category, err := NewCategory(models.CategoryKindVideo, "Concerts", "")
	require.NoError(t, err)

	// a video category cannot back a photo record
	_, err = EnsureCategory(models.CategoryKindPhoto, category.ID)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = EnsureCategory(models.CategoryKindVideo, category.ID)
	require.NoError(t, err)
}

func TestListCategoryWithUsage(t *testing.T) {
	setupTest(t)

	category, err := NewCategory(models.CategoryKindPhoto, "Backstage", "")
	require.NoError(t, err)
	empty, err := NewCategory(models.CategoryKindPhoto, "Unused", "")
	require.NoError(t, err)

	_, err = NewPhoto(context.Background(), models.Photo{Name: "Soundcheck", CategoryID: category.ID}, nil)
	require.NoError(t, err)

	categories, err := ListCategoryWithUsage(models.CategoryKindPhoto)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	for _, item := range categories {
		switch item.ID {
		case category.ID:
			assert.Equal(t, int64(1), item.TotalRecords)
		case empty.ID:
			assert.Equal(t, int64(0), item.TotalRecords)
		}
	}
}

func TestGetCategoryBySlug(t *testing.T) {
	setupTest(t)

	category, err := NewCategory(models.CategoryKindVideo, "Campus Visits!!", "")
	require.NoError(t, err)

	found, err := GetCategoryBySlug(models.CategoryKindVideo, "campus-visits")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	// slugs resolve within their own kind only
	_, err = GetCategoryBySlug(models.CategoryKindPhoto, "campus-visits")
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
