package domain

import "time"

// Event types published when the importer accepts an entity
const (
	EventCategoryRegistered   = "category.registered"
	EventGenreRegistered      = "genre.registered"
	EventCastMemberRegistered = "cast_member.registered"
	EventVideoRegistered      = "video.registered"
)

// CategoryRegisteredEvent is published when a category is accepted
type CategoryRegisteredEvent struct {
	Category  *Category
	timestamp int64
}

// NewCategoryRegisteredEvent creates the event for an accepted category
func NewCategoryRegisteredEvent(category *Category) *CategoryRegisteredEvent {
	return &CategoryRegisteredEvent{
		Category:  category,
		timestamp: time.Now().Unix(),
	}
}

// EventType returns EventCategoryRegistered
func (e *CategoryRegisteredEvent) EventType() string {
	return EventCategoryRegistered
}

// Timestamp returns when the event was created (unix seconds)
func (e *CategoryRegisteredEvent) Timestamp() int64 {
	return e.timestamp
}

// AggregateID returns the category ID
func (e *CategoryRegisteredEvent) AggregateID() string {
	return e.Category.ID().String()
}

// GenreRegisteredEvent is published when a genre is accepted
type GenreRegisteredEvent struct {
	Genre     *Genre
	timestamp int64
}

// NewGenreRegisteredEvent creates the event for an accepted genre
func NewGenreRegisteredEvent(genre *Genre) *GenreRegisteredEvent {
	return &GenreRegisteredEvent{
		Genre:     genre,
		timestamp: time.Now().Unix(),
	}
}

// EventType returns EventGenreRegistered
func (e *GenreRegisteredEvent) EventType() string {
	return EventGenreRegistered
}

// Timestamp returns when the event was created (unix seconds)
func (e *GenreRegisteredEvent) Timestamp() int64 {
	return e.timestamp
}

// AggregateID returns the genre ID
func (e *GenreRegisteredEvent) AggregateID() string {
	return e.Genre.ID().String()
}

// CastMemberRegisteredEvent is published when a cast member is accepted
type CastMemberRegisteredEvent struct {
	CastMember *CastMember
	timestamp  int64
}

// NewCastMemberRegisteredEvent creates the event for an accepted cast member
func NewCastMemberRegisteredEvent(castMember *CastMember) *CastMemberRegisteredEvent {
	return &CastMemberRegisteredEvent{
		CastMember: castMember,
		timestamp:  time.Now().Unix(),
	}
}

// EventType returns EventCastMemberRegistered
func (e *CastMemberRegisteredEvent) EventType() string {
	return EventCastMemberRegistered
}

// Timestamp returns when the event was created (unix seconds)
func (e *CastMemberRegisteredEvent) Timestamp() int64 {
	return e.timestamp
}

// AggregateID returns the cast member ID
func (e *CastMemberRegisteredEvent) AggregateID() string {
	return e.CastMember.ID().String()
}

// VideoRegisteredEvent is published when a video is accepted
type VideoRegisteredEvent struct {
	Video     *Video
	timestamp int64
}

// NewVideoRegisteredEvent creates the event for an accepted video
func NewVideoRegisteredEvent(video *Video) *VideoRegisteredEvent {
	return &VideoRegisteredEvent{
		Video:     video,
		timestamp: time.Now().Unix(),
	}
}

// EventType returns EventVideoRegistered
func (e *VideoRegisteredEvent) EventType() string {
	return EventVideoRegistered
}

// Timestamp returns when the event was created (unix seconds)
func (e *VideoRegisteredEvent) Timestamp() int64 {
	return e.timestamp
}

// AggregateID returns the video ID
func (e *VideoRegisteredEvent) AggregateID() string {
	return e.Video.ID().String()
}
