package services

import (
	"testing"
	"time"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func videoCategory(t *testing.T) models.Category {
	t.Helper()
	category, err := NewCategory(models.CategoryKindVideo, "Concerts", "")
	require.NoError(t, err)
	return category
}

func TestNewVideoValidatesCategory(t *testing.T) {
	setupTest(t)

	_, err := NewVideo(models.Video{Title: "Live in Bogotá", YoutubeID: "abc123", CategoryID: 42})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	count, err := CountVideo(database.C)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "a rejected create must not partially write")
}

func TestVideoSearchRoundTrip(t *testing.T) {
	setupTest(t)
	category := videoCategory(t)

	created, err := NewVideo(models.Video{
		Title:      "Live in Bogotá",
		YoutubeID:  "abc123",
		Published:  true,
		Tags:       datatypes.NewJSONSlice([]string{"live", "tour"}),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	_, err = NewVideo(models.Video{
		Title:      "Studio Session",
		YoutubeID:  "def456",
		Published:  true,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	// case-insensitive substring over the title
	tx := FilterVideoWithFuzzySearch(database.C, "bogotá")
	items, err := ListVideo(tx, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	// tags are searched too
	tx = FilterVideoWithFuzzySearch(database.C, "TOUR")
	items, err = ListVideo(tx, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestVideoStatusFilter(t *testing.T) {
	setupTest(t)
	category := videoCategory(t)

	_, err := NewVideo(models.Video{Title: "Public", YoutubeID: "a", Published: true, CategoryID: category.ID})
	require.NoError(t, err)
	draft, err := NewVideo(models.Video{Title: "Draft", YoutubeID: "b", Published: false, CategoryID: category.ID})
	require.NoError(t, err)

	items, err := ListVideo(FilterVideoWithStatus(database.C, "draft"), 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, draft.ID, items[0].ID)

	items, err = ListVideo(FilterVideoPublished(database.C), 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Public", items[0].Title)
}

func TestGetFeaturedVideo(t *testing.T) {
	setupTest(t)
	category := videoCategory(t)

	pick, err := GetFeaturedVideo(FilterVideoPublished(database.C))
	require.NoError(t, err)
	assert.Nil(t, pick, "no flagged record means no pick")

	_, err = NewVideo(models.Video{Title: "Old Feature", YoutubeID: "a", Published: true, Featured: true, CategoryID: category.ID})
	require.NoError(t, err)
	newest, err := NewVideo(models.Video{Title: "New Feature", YoutubeID: "b", Published: true, Featured: true, CategoryID: category.ID})
	require.NoError(t, err)
	// force a distinct, newer timestamp; sqlite rounds otherwise
	require.NoError(t, database.C.Model(&newest).Update("created_at", newest.CreatedAt.Add(time.Second)).Error)

	pick, err = GetFeaturedVideo(FilterVideoPublished(database.C))
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.Equal(t, newest.ID, pick.ID)
}

func TestEditVideoLastWriteWins(t *testing.T) {
	setupTest(t)
	category := videoCategory(t)

	item, err := NewVideo(models.Video{Title: "Original", YoutubeID: "a", CategoryID: category.ID})
	require.NoError(t, err)

	item.Title = "First Edit"
	_, err = EditVideo(item)
	require.NoError(t, err)

	item.Title = "Second Edit"
	_, err = EditVideo(item)
	require.NoError(t, err)

	stored, err := GetVideo(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second Edit", stored.Title)
}

func TestDeleteVideo(t *testing.T) {
	setupTest(t)
	category := videoCategory(t)

	item, err := NewVideo(models.Video{Title: "Doomed", YoutubeID: "a", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, DeleteVideo(item))

	_, err = GetVideo(item.ID)
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
