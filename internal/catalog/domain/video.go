package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video is the catalog aggregate. It references categories, genres, cast
// members and files without owning their lifecycle, and enforces no
// uniqueness across those collections.
type Video struct {
	BaseEntity
	title        string
	description  string
	yearLaunched int
	opened       *bool
	rating       string
	duration     float64
	categories   []*Category
	genres       []*Genre
	castMembers  []*CastMember
	videoFiles   []*VideoFile
	clock        Clock
}

// VideoOption configures optional video fields at construction.
type VideoOption func(*videoOptions)

type videoOptions struct {
	id          *uuid.UUID
	clock       Clock
	opened      *bool
	rating      string
	duration    *float64
	categories  []*Category
	genres      []*Genre
	castMembers []*CastMember
	videoFiles  []*VideoFile

	categoriesSet  bool
	genresSet      bool
	castMembersSet bool
	videoFilesSet  bool
}

// WithVideoID uses id instead of generating one.
func WithVideoID(id uuid.UUID) VideoOption {
	return func(o *videoOptions) { o.id = &id }
}

// WithClock sets the clock used by the year-launched rule.
func WithClock(clock Clock) VideoOption {
	return func(o *videoOptions) { o.clock = clock }
}

// WithOpened sets the opened flag.
func WithOpened(opened bool) VideoOption {
	return func(o *videoOptions) { o.opened = &opened }
}

// WithRating sets the rating.
func WithRating(rating string) VideoOption {
	return func(o *videoOptions) { o.rating = rating }
}

// WithDuration sets the duration, rounded like SetDuration.
func WithDuration(duration float64) VideoOption {
	return func(o *videoOptions) { o.duration = &duration }
}

// WithCategories sets the categories.
func WithCategories(categories []*Category) VideoOption {
	return func(o *videoOptions) {
		o.categories = categories
		o.categoriesSet = true
	}
}

// WithGenres sets the genres.
func WithGenres(genres []*Genre) VideoOption {
	return func(o *videoOptions) {
		o.genres = genres
		o.genresSet = true
	}
}

// WithCastMembers sets the cast members.
func WithCastMembers(castMembers []*CastMember) VideoOption {
	return func(o *videoOptions) {
		o.castMembers = castMembers
		o.castMembersSet = true
	}
}

// WithVideoFiles sets the video files.
func WithVideoFiles(videoFiles []*VideoFile) VideoOption {
	return func(o *videoOptions) {
		o.videoFiles = videoFiles
		o.videoFilesSet = true
	}
}

// NewVideo creates a new Video aggregate. Every supplied value goes through
// the same setter validation used after construction.
func NewVideo(title, description string, yearLaunched int, opts ...VideoOption) (*Video, error) {
	var o videoOptions
	for _, opt := range opts {
		opt(&o)
	}

	base, err := newBaseEntity(o.id)
	if err != nil {
		return nil, err
	}

	video := &Video{
		BaseEntity:  base,
		clock:       o.clock,
		categories:  make([]*Category, 0),
		genres:      make([]*Genre, 0),
		castMembers: make([]*CastMember, 0),
		videoFiles:  make([]*VideoFile, 0),
	}

	if err := video.SetTitle(title); err != nil {
		return nil, err
	}
	video.SetDescription(description)
	if err := video.SetYearLaunched(yearLaunched); err != nil {
		return nil, err
	}
	if o.opened != nil {
		video.SetOpened(*o.opened)
	}
	video.SetRating(o.rating)
	if o.duration != nil {
		if err := video.SetDuration(*o.duration); err != nil {
			return nil, err
		}
	}
	if o.videoFilesSet {
		if err := video.SetVideoFiles(o.videoFiles); err != nil {
			return nil, err
		}
	}
	if o.categoriesSet {
		if err := video.SetCategories(o.categories); err != nil {
			return nil, err
		}
	}
	if o.genresSet {
		if err := video.SetGenres(o.genres); err != nil {
			return nil, err
		}
	}
	if o.castMembersSet {
		if err := video.SetCastMembers(o.castMembers); err != nil {
			return nil, err
		}
	}

	return video, nil
}

// CreateVideoWithFiles builds a new video, with a fresh identity, from its
// full set of references including files.
func CreateVideoWithFiles(
	title, description string,
	yearLaunched int,
	duration float64,
	categories []*Category,
	genres []*Genre,
	castMembers []*CastMember,
	videoFiles []*VideoFile,
	opts ...VideoOption,
) (*Video, error) {
	opts = append(opts,
		WithDuration(duration),
		WithVideoFiles(videoFiles),
		WithCategories(categories),
		WithGenres(genres),
		WithCastMembers(castMembers),
	)
	return NewVideo(title, description, yearLaunched, opts...)
}

// CreateVideoWithoutFile builds a new video, with a fresh identity, that has
// no files attached yet.
func CreateVideoWithoutFile(
	title, description string,
	yearLaunched int,
	duration float64,
	categories []*Category,
	genres []*Genre,
	castMembers []*CastMember,
	opts ...VideoOption,
) (*Video, error) {
	opts = append(opts,
		WithDuration(duration),
		WithCategories(categories),
		WithGenres(genres),
		WithCastMembers(castMembers),
	)
	return NewVideo(title, description, yearLaunched, opts...)
}

// Title returns the video title
func (v *Video) Title() string {
	return v.title
}

// SetTitle sets the video title
func (v *Video) SetTitle(title string) error {
	if err := validateName("title", title); err != nil {
		return err
	}
	v.title = title
	return nil
}

// Description returns the video description
func (v *Video) Description() string {
	return v.description
}

// SetDescription sets the video description
func (v *Video) SetDescription(description string) {
	v.description = description
}

// YearLaunched returns the launch year
func (v *Video) YearLaunched() int {
	return v.yearLaunched
}

// SetYearLaunched sets the launch year. The upper bound is the current year
// of the video's clock at call time.
func (v *Video) SetYearLaunched(yearLaunched int) error {
	if err := validateYearLaunched(yearLaunched, v.now().Year()); err != nil {
		return err
	}
	v.yearLaunched = yearLaunched
	return nil
}

// Opened returns the opened flag, nil when it was never set
func (v *Video) Opened() *bool {
	if v.opened == nil {
		return nil
	}
	opened := *v.opened
	return &opened
}

// IsOpened reports whether the opened flag is set and true.
func (v *Video) IsOpened() bool {
	return v.opened != nil && *v.opened
}

// SetOpened sets the opened flag
func (v *Video) SetOpened(opened bool) {
	v.opened = &opened
}

// Rating returns the rating
func (v *Video) Rating() string {
	return v.rating
}

// SetRating sets the rating
func (v *Video) SetRating(rating string) {
	v.rating = rating
}

// Duration returns the duration
func (v *Video) Duration() float64 {
	return v.duration
}

// SetDuration stores duration rounded to two decimal places.
func (v *Video) SetDuration(duration float64) error {
	rounded, err := roundDuration(duration)
	if err != nil {
		return err
	}
	v.duration = rounded
	return nil
}

// Categories returns a copy of the categories
func (v *Video) Categories() []*Category {
	return copyRefs(v.categories)
}

// SetCategories replaces the categories with a copy of the given slice
func (v *Video) SetCategories(categories []*Category) error {
	if categories == nil {
		return NewValidationError("categories", "are marked non-null but are null")
	}
	v.categories = copyRefs(categories)
	return nil
}

// AddCategory appends a category
func (v *Video) AddCategory(category *Category) error {
	if category == nil {
		return NewValidationError("category", "is marked non-null but is null")
	}
	v.categories = append(v.categories, category)
	return nil
}

// RemoveCategory removes every occurrence of category
func (v *Video) RemoveCategory(category *Category) error {
	if category == nil {
		return NewValidationError("category", "is marked non-null but is null")
	}
	v.categories = removeRef(v.categories, category)
	return nil
}

// Genres returns a copy of the genres
func (v *Video) Genres() []*Genre {
	return copyRefs(v.genres)
}

// SetGenres replaces the genres with a copy of the given slice
func (v *Video) SetGenres(genres []*Genre) error {
	if genres == nil {
		return NewValidationError("genres", "are marked non-null but are null")
	}
	v.genres = copyRefs(genres)
	return nil
}

// AddGenre appends a genre
func (v *Video) AddGenre(genre *Genre) error {
	if genre == nil {
		return NewValidationError("genre", "is marked non-null but is null")
	}
	v.genres = append(v.genres, genre)
	return nil
}

// RemoveGenre removes every occurrence of genre
func (v *Video) RemoveGenre(genre *Genre) error {
	if genre == nil {
		return NewValidationError("genre", "is marked non-null but is null")
	}
	v.genres = removeRef(v.genres, genre)
	return nil
}

// CastMembers returns a copy of the cast members
func (v *Video) CastMembers() []*CastMember {
	return copyRefs(v.castMembers)
}

// SetCastMembers replaces the cast members with a copy of the given slice
func (v *Video) SetCastMembers(castMembers []*CastMember) error {
	if castMembers == nil {
		return NewValidationError("castMembers", "are marked non-null but are null")
	}
	v.castMembers = copyRefs(castMembers)
	return nil
}

// AddCastMember appends a cast member
func (v *Video) AddCastMember(castMember *CastMember) error {
	if castMember == nil {
		return NewValidationError("castMember", "is marked non-null but is null")
	}
	v.castMembers = append(v.castMembers, castMember)
	return nil
}

// RemoveCastMember removes every occurrence of castMember
func (v *Video) RemoveCastMember(castMember *CastMember) error {
	if castMember == nil {
		return NewValidationError("castMember", "is marked non-null but is null")
	}
	v.castMembers = removeRef(v.castMembers, castMember)
	return nil
}

// VideoFiles returns a copy of the video files
func (v *Video) VideoFiles() []*VideoFile {
	return copyRefs(v.videoFiles)
}

// SetVideoFiles replaces the video files with a copy of the given slice
func (v *Video) SetVideoFiles(videoFiles []*VideoFile) error {
	if videoFiles == nil {
		return NewValidationError("videoFiles", "are marked non-null but are null")
	}
	v.videoFiles = copyRefs(videoFiles)
	return nil
}

// HasGenre checks if the video references a specific genre
func (v *Video) HasGenre(genre *Genre) bool {
	for _, g := range v.genres {
		if g == genre {
			return true
		}
	}
	return false
}

// HasCastMember checks if the video credits a specific cast member
func (v *Video) HasCastMember(castMember *CastMember) bool {
	for _, m := range v.castMembers {
		if m == castMember {
			return true
		}
	}
	return false
}

func (v *Video) now() time.Time {
	if v.clock == nil {
		return SystemClock{}.Now()
	}
	return v.clock.Now()
}
