package importer

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// EventImportCompleted is published once per Import call that runs to the end
const EventImportCompleted = "catalog.import.completed"

// Importer assembles a catalog object graph from a Manifest.
type Importer struct {
	publisher interfaces.EventPublisher
	logger    interfaces.Logger
	clock     domain.Clock
	failFast  bool
}

// Option configures an Importer
type Option func(*Importer)

// WithClock sets the clock used for the year-launched rule
func WithClock(clock domain.Clock) Option {
	return func(i *Importer) { i.clock = clock }
}

// WithFailFast aborts the import at the first rejected entry
func WithFailFast(failFast bool) Option {
	return func(i *Importer) { i.failFast = failFast }
}

// NewImporter creates a new importer
func NewImporter(publisher interfaces.EventPublisher, logger interfaces.Logger, opts ...Option) *Importer {
	i := &Importer{
		publisher: publisher,
		logger:    logger,
		clock:     domain.SystemClock{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import builds categories, genres, cast members and videos in that order,
// so every reference points at an entry of an earlier phase. Rejected
// entries are collected in the result; an entry referencing a rejected
// entry is rejected too.
func (i *Importer) Import(ctx context.Context, m *Manifest) (*Result, error) {
	if m == nil {
		return nil, errors.BadRequest("manifest is required")
	}

	result := newResult()

	for _, entry := range m.Categories {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := importEntry(ctx, i, result, KindCategory, entry.Key, result.Categories,
			func() (*domain.Category, error) { return i.buildCategory(result, entry) },
			func(c *domain.Category) interfaces.Event { return domain.NewCategoryRegisteredEvent(c) },
		); err != nil {
			return result, err
		}
	}

	for _, entry := range m.Genres {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := importEntry(ctx, i, result, KindGenre, entry.Key, result.Genres,
			func() (*domain.Genre, error) { return i.buildGenre(result, entry) },
			func(g *domain.Genre) interfaces.Event { return domain.NewGenreRegisteredEvent(g) },
		); err != nil {
			return result, err
		}
	}

	for _, entry := range m.CastMembers {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := importEntry(ctx, i, result, KindCastMember, entry.Key, result.CastMembers,
			func() (*domain.CastMember, error) { return i.buildCastMember(result, entry) },
			func(c *domain.CastMember) interfaces.Event { return domain.NewCastMemberRegisteredEvent(c) },
		); err != nil {
			return result, err
		}
	}

	for _, entry := range m.Videos {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := importEntry(ctx, i, result, KindVideo, entry.Key, result.Videos,
			func() (*domain.Video, error) { return i.buildVideo(result, entry) },
			func(v *domain.Video) interfaces.Event { return domain.NewVideoRegisteredEvent(v) },
		); err != nil {
			return result, err
		}
	}

	i.logger.Info("Catalog import completed",
		interfaces.Int("categories", len(result.Categories)),
		interfaces.Int("genres", len(result.Genres)),
		interfaces.Int("cast_members", len(result.CastMembers)),
		interfaces.Int("videos", len(result.Videos)),
		interfaces.Int("rejected", len(result.Rejections)))

	if err := i.publisher.Publish(ctx, events.NewEvent(EventImportCompleted, map[string]interface{}{
		"accepted": result.Accepted(),
		"rejected": len(result.Rejections),
	})); err != nil {
		return result, errors.Wrap(errors.ErrorTypeInternal, "failed to publish import summary", err)
	}

	return result, nil
}

// importEntry builds one entry, then records a rejection or publishes the
// entity event. The entity is registered under key only once its event is
// published. The returned error aborts the import.
func importEntry[T any](
	ctx context.Context,
	i *Importer,
	result *Result,
	kind, key string,
	registry map[string]*T,
	build func() (*T, error),
	newEvent func(*T) interfaces.Event,
) error {
	entity, err := build()
	if err != nil {
		rejection := Rejection{Kind: kind, Key: key, Err: err}
		result.Rejections = append(result.Rejections, rejection)

		i.logger.Warn("Manifest entry rejected",
			interfaces.String("kind", kind),
			interfaces.String("key", key),
			interfaces.String("reason", string(errors.TypeOf(err))),
			interfaces.Error(err))

		if i.failFast {
			return errors.Wrap(errors.ErrorTypeBadRequest, "import aborted", rejection)
		}
		return nil
	}

	event := newEvent(entity)
	if err := i.publisher.Publish(ctx, event); err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, fmt.Sprintf("failed to publish %s", event.EventType()), err)
	}
	registry[key] = entity

	i.logger.Debug("Manifest entry imported",
		interfaces.String("kind", kind),
		interfaces.String("key", key),
		interfaces.String("id", event.AggregateID()))
	return nil
}

func (i *Importer) buildCategory(result *Result, entry CategoryEntry) (*domain.Category, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if _, exists := result.Categories[entry.Key]; exists {
		return nil, duplicateKey(KindCategory, entry.Key)
	}

	category, err := domain.NewCategory(entry.Name, domain.WithCategoryDescription(entry.Description))
	if err != nil {
		return nil, invalidEntry(err)
	}
	return category, nil
}

func (i *Importer) buildGenre(result *Result, entry GenreEntry) (*domain.Genre, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if _, exists := result.Genres[entry.Key]; exists {
		return nil, duplicateKey(KindGenre, entry.Key)
	}

	categories, err := resolve(KindCategory, entry.Categories, result.Categories)
	if err != nil {
		return nil, err
	}

	genre, err := domain.NewGenreWithCategories(entry.Name, categories)
	if err != nil {
		return nil, invalidEntry(err)
	}
	return genre, nil
}

func (i *Importer) buildCastMember(result *Result, entry CastMemberEntry) (*domain.CastMember, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if _, exists := result.CastMembers[entry.Key]; exists {
		return nil, duplicateKey(KindCastMember, entry.Key)
	}

	if entry.Type == nil {
		member, err := domain.NewCastMember(entry.Name)
		if err != nil {
			return nil, invalidEntry(err)
		}
		return member, nil
	}

	memberType, err := domain.ParseCastMemberType(*entry.Type)
	if err != nil {
		return nil, invalidEntry(err)
	}
	member, err := domain.NewCastMemberWithType(entry.Name, memberType)
	if err != nil {
		return nil, invalidEntry(err)
	}
	return member, nil
}

func (i *Importer) buildVideo(result *Result, entry VideoEntry) (*domain.Video, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if _, exists := result.Videos[entry.Key]; exists {
		return nil, duplicateKey(KindVideo, entry.Key)
	}

	categories, err := resolve(KindCategory, entry.Categories, result.Categories)
	if err != nil {
		return nil, err
	}
	genres, err := resolve(KindGenre, entry.Genres, result.Genres)
	if err != nil {
		return nil, err
	}
	castMembers, err := resolve(KindCastMember, entry.CastMembers, result.CastMembers)
	if err != nil {
		return nil, err
	}

	files := make([]*domain.VideoFile, 0, len(entry.Files))
	for _, f := range entry.Files {
		file, err := domain.NewVideoFile(f.Path, domain.VideoFileKind(f.Kind))
		if err != nil {
			return nil, invalidEntry(err)
		}
		files = append(files, file)
	}

	opts := []domain.VideoOption{
		domain.WithClock(i.clock),
		domain.WithRating(entry.Rating),
		domain.WithCategories(categories),
		domain.WithGenres(genres),
		domain.WithCastMembers(castMembers),
		domain.WithVideoFiles(files),
	}
	if entry.Opened != nil {
		opts = append(opts, domain.WithOpened(*entry.Opened))
	}
	if entry.Duration != nil {
		opts = append(opts, domain.WithDuration(*entry.Duration))
	}

	video, err := domain.NewVideo(entry.Title, entry.Description, *entry.YearLaunched, opts...)
	if err != nil {
		return nil, invalidEntry(err)
	}
	return video, nil
}

func validateEntry(entry validation.Validatable) error {
	if err := entry.Validate(); err != nil {
		return errors.Wrap(errors.ErrorTypeBadRequest, "invalid manifest entry", err)
	}
	return nil
}

func invalidEntry(err error) error {
	return errors.Wrap(errors.ErrorTypeBadRequest, "entity validation failed", err)
}

func duplicateKey(kind, key string) error {
	return errors.Conflict(fmt.Sprintf("%s key %q is already defined", kind, key))
}

// resolve maps keys to already-imported entities, keeping manifest order.
func resolve[T any](kind string, keys []string, known map[string]*T) ([]*T, error) {
	refs := make([]*T, 0, len(keys))
	for _, key := range keys {
		ref, ok := known[key]
		if !ok {
			return nil, errors.NotFound(fmt.Sprintf("%s %q is not defined or was rejected", kind, key))
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
