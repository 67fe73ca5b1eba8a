package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

// ReferenceYear is the year returned by Clock
const ReferenceYear = 2024

// Clock returns a clock pinned to ReferenceYear.
func Clock() domain.Clock {
	return domain.YearClock(ReferenceYear)
}

// CreateTestCategory creates a test category.
func CreateTestCategory(t testing.TB, name string) *domain.Category {
	t.Helper()
	category, err := domain.NewCategory(name, domain.WithCategoryDescription(name+" description"))
	require.NoError(t, err)
	return category
}

// CreateTestGenre creates a test genre with the given categories.
func CreateTestGenre(t testing.TB, name string, categories ...*domain.Category) *domain.Genre {
	t.Helper()
	if categories == nil {
		categories = []*domain.Category{}
	}
	genre, err := domain.NewGenreWithCategories(name, categories)
	require.NoError(t, err)
	return genre
}

// CreateTestCastMember creates a test cast member of type one.
func CreateTestCastMember(t testing.TB, name string) *domain.CastMember {
	t.Helper()
	member, err := domain.NewCastMemberWithType(name, domain.CastMemberTypeOne)
	require.NoError(t, err)
	return member
}

// CreateTestVideoFile creates a test video file under /test/media.
func CreateTestVideoFile(t testing.TB, name string, kind domain.VideoFileKind) *domain.VideoFile {
	t.Helper()
	file, err := domain.NewVideoFile(fmt.Sprintf("/test/media/%s.mp4", name), kind)
	require.NoError(t, err)
	return file
}

// CreateTestVideo creates a test video launched in 2020, bound to Clock.
func CreateTestVideo(t testing.TB, title string, opts ...domain.VideoOption) *domain.Video {
	t.Helper()
	opts = append([]domain.VideoOption{
		domain.WithClock(Clock()),
		domain.WithRating("Rating 10"),
		domain.WithDuration(60),
	}, opts...)
	video, err := domain.NewVideo(title, "Test video description", 2020, opts...)
	require.NoError(t, err)
	return video
}
