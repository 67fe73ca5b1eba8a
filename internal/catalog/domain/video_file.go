package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// VideoFileKind identifies what a stored file is used for.
type VideoFileKind string

const (
	VideoFileKindVideo     VideoFileKind = "video"
	VideoFileKindTrailer   VideoFileKind = "trailer"
	VideoFileKindBanner    VideoFileKind = "banner"
	VideoFileKindThumbnail VideoFileKind = "thumbnail"
)

// IsValid reports whether k is a known kind.
func (k VideoFileKind) IsValid() bool {
	switch k {
	case VideoFileKindVideo, VideoFileKindTrailer, VideoFileKindBanner, VideoFileKindThumbnail:
		return true
	default:
		return false
	}
}

// VideoFile is a media file attached to a video.
type VideoFile struct {
	BaseEntity
	filePath string
	kind     VideoFileKind
}

// VideoFileOption configures optional video file fields.
type VideoFileOption func(*videoFileOptions)

type videoFileOptions struct {
	id *uuid.UUID
}

// WithVideoFileID uses id instead of generating one.
func WithVideoFileID(id uuid.UUID) VideoFileOption {
	return func(o *videoFileOptions) {
		o.id = &id
	}
}

// NewVideoFile creates a new VideoFile with validation
func NewVideoFile(filePath string, kind VideoFileKind, opts ...VideoFileOption) (*VideoFile, error) {
	var o videoFileOptions
	for _, opt := range opts {
		opt(&o)
	}

	base, err := newBaseEntity(o.id)
	if err != nil {
		return nil, err
	}
	if filePath == "" {
		return nil, NewValidationError("filePath", "is marked non-blank but is blank")
	}
	if !kind.IsValid() {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown video file kind %q", kind))
	}

	return &VideoFile{
		BaseEntity: base,
		filePath:   filePath,
		kind:       kind,
	}, nil
}

// FilePath returns the file path
func (f *VideoFile) FilePath() string {
	return f.filePath
}

// Kind returns the file kind
func (f *VideoFile) Kind() VideoFileKind {
	return f.kind
}
