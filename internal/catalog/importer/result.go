package importer

import (
	"fmt"
	"maps"
	"slices"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/specification"
)

// Entry kinds reported in rejections
const (
	KindCategory   = "category"
	KindGenre      = "genre"
	KindCastMember = "cast_member"
	KindVideo      = "video"
)

// Rejection records a manifest entry that was not imported.
type Rejection struct {
	Kind string
	Key  string
	Err  error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("%s %q: %v", r.Kind, r.Key, r.Err)
}

// Unwrap returns the underlying error
func (r Rejection) Unwrap() error {
	return r.Err
}

// Result holds the accepted entities keyed by manifest key, and the
// rejected entries in manifest order.
type Result struct {
	Categories  map[string]*domain.Category
	Genres      map[string]*domain.Genre
	CastMembers map[string]*domain.CastMember
	Videos      map[string]*domain.Video
	Rejections  []Rejection
}

func newResult() *Result {
	return &Result{
		Categories:  make(map[string]*domain.Category),
		Genres:      make(map[string]*domain.Genre),
		CastMembers: make(map[string]*domain.CastMember),
		Videos:      make(map[string]*domain.Video),
	}
}

// Accepted returns the number of imported entities
func (r *Result) Accepted() int {
	return len(r.Categories) + len(r.Genres) + len(r.CastMembers) + len(r.Videos)
}

// HasRejections reports whether any entry was rejected
func (r *Result) HasRejections() bool {
	return len(r.Rejections) > 0
}

// FindVideos returns the accepted videos satisfying spec, ordered by key.
func (r *Result) FindVideos(spec specification.VideoSpecification) []*domain.Video {
	keys := slices.Sorted(maps.Keys(r.Videos))
	videos := make([]*domain.Video, 0, len(keys))
	for _, key := range keys {
		videos = append(videos, r.Videos[key])
	}
	return specification.Filter(videos, spec)
}
