package importer_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/importer"
	"github.com/narwhalmedia/catalog/internal/catalog/specification"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event interfaces.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockPublisher) published(eventType string) int {
	n := 0
	for _, call := range m.Calls {
		if call.Method == "Publish" && call.Arguments.Get(1).(interfaces.Event).EventType() == eventType {
			n++
		}
	}
	return n
}

type ImporterTestSuite struct {
	suite.Suite
	ctx       context.Context
	publisher *mockPublisher
	logs      *observer.ObservedLogs
	importer  *importer.Importer
}

func (s *ImporterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.publisher = new(mockPublisher)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs
	s.importer = importer.NewImporter(s.publisher, logger.NewFromZap(zap.New(core)),
		importer.WithClock(testutil.Clock()))
}

func (s *ImporterTestSuite) manifest() *importer.Manifest {
	return &importer.Manifest{
		Categories: []importer.CategoryEntry{
			{Key: "drama", Name: "Drama"},
			{Key: "comedy", Name: "Comedy", Description: "Funny"},
		},
		Genres: []importer.GenreEntry{
			{Key: "dramedy", Name: "Dramedy", Categories: []string{"drama", "comedy"}},
		},
		CastMembers: []importer.CastMemberEntry{
			{Key: "caique", Name: "Caique", Type: intPtr(1)},
			{Key: "mary", Name: "Mary Jane"},
		},
		Videos: []importer.VideoEntry{
			{
				Key:          "video-1",
				Title:        "Video 1",
				Description:  "Description random",
				YearLaunched: intPtr(2020),
				Opened:       boolPtr(false),
				Rating:       "Rating 10",
				Duration:     floatPtr(13.456),
				Categories:   []string{"drama"},
				Genres:       []string{"dramedy"},
				CastMembers:  []string{"caique", "mary"},
				Files:        []importer.FileEntry{{Path: "/media/video-1.mp4", Kind: "video"}},
			},
		},
	}
}

func (s *ImporterTestSuite) TestImport_AcceptsWholeManifest() {
	result, err := s.importer.Import(s.ctx, s.manifest())
	s.Require().NoError(err)

	s.False(result.HasRejections())
	s.Equal(6, result.Accepted())

	genre := result.Genres["dramedy"]
	s.Require().NotNil(genre)
	s.Equal([]*domain.Category{result.Categories["drama"], result.Categories["comedy"]}, genre.Categories())

	s.Equal(domain.CastMemberTypeOne, result.CastMembers["caique"].Type())
	s.False(result.CastMembers["mary"].HasType())

	video := result.Videos["video-1"]
	s.Require().NotNil(video)
	s.Equal("Video 1", video.Title())
	s.Equal(2020, video.YearLaunched())
	s.InDelta(13.46, video.Duration(), 1e-9)
	s.Require().NotNil(video.Opened())
	s.False(*video.Opened())
	s.True(video.HasGenre(genre))
	s.Len(video.CastMembers(), 2)
	s.Len(video.VideoFiles(), 1)

	s.Equal(2, s.publisher.published(domain.EventCategoryRegistered))
	s.Equal(1, s.publisher.published(domain.EventGenreRegistered))
	s.Equal(2, s.publisher.published(domain.EventCastMemberRegistered))
	s.Equal(1, s.publisher.published(domain.EventVideoRegistered))
	s.Equal(1, s.publisher.published(importer.EventImportCompleted))

	s.Equal(1, s.logs.FilterMessage("Catalog import completed").Len())
}

func (s *ImporterTestSuite) TestResult_FindVideos() {
	m := s.manifest()
	m.Videos = append(m.Videos,
		importer.VideoEntry{Key: "video-0", Title: "Video 0", YearLaunched: intPtr(1990), Genres: []string{"dramedy"}},
		importer.VideoEntry{Key: "video-3", Title: "Video 3", YearLaunched: intPtr(2001)},
	)

	result, err := s.importer.Import(s.ctx, m)
	s.Require().NoError(err)

	dramedy := specification.InGenre(result.Genres["dramedy"])
	s.Equal([]*domain.Video{result.Videos["video-0"], result.Videos["video-1"]}, result.FindVideos(dramedy))

	recent := specification.And(dramedy, specification.LaunchedBetween(2000, 2024))
	s.Equal([]*domain.Video{result.Videos["video-1"]}, result.FindVideos(recent))
}

func (s *ImporterTestSuite) TestImport_UnknownReferenceRejectsOnlyThatEntry() {
	m := s.manifest()
	m.Videos = append(m.Videos, importer.VideoEntry{
		Key:          "video-2",
		Title:        "Video 2",
		YearLaunched: intPtr(2021),
		Genres:       []string{"horror"},
	})

	result, err := s.importer.Import(s.ctx, m)
	s.Require().NoError(err)

	s.Contains(result.Videos, "video-1")
	s.NotContains(result.Videos, "video-2")
	s.Require().Len(result.Rejections, 1)

	rejection := result.Rejections[0]
	s.Equal(importer.KindVideo, rejection.Kind)
	s.Equal("video-2", rejection.Key)
	s.True(errors.IsNotFound(rejection))

	warnings := s.logs.FilterLevelExact(zapcore.WarnLevel).All()
	s.Require().Len(warnings, 1)
	s.Equal("video-2", warnings[0].ContextMap()["key"])
	s.Equal(string(errors.ErrorTypeNotFound), warnings[0].ContextMap()["reason"])
}

func (s *ImporterTestSuite) TestImport_RejectedCategoryCascades() {
	m := s.manifest()
	m.Categories[0].Name = ""

	result, err := s.importer.Import(s.ctx, m)
	s.Require().NoError(err)

	s.Require().Len(result.Rejections, 3)
	s.Equal("drama", result.Rejections[0].Key)
	s.True(errors.IsBadRequest(result.Rejections[0]))
	s.ErrorIs(result.Rejections[0], domain.ErrInvalidArgument)

	s.Equal("dramedy", result.Rejections[1].Key)
	s.Equal("video-1", result.Rejections[2].Key)
	s.Empty(result.Videos)
}

func (s *ImporterTestSuite) TestImport_DuplicateKey() {
	m := s.manifest()
	m.Categories = append(m.Categories, importer.CategoryEntry{Key: "drama", Name: "Drama again"})

	result, err := s.importer.Import(s.ctx, m)
	s.Require().NoError(err)

	s.Require().Len(result.Rejections, 1)
	s.True(errors.IsConflict(result.Rejections[0]))
	s.Equal("Drama", result.Categories["drama"].Name())
}

func (s *ImporterTestSuite) TestImport_DomainRules() {
	tests := []struct {
		name  string
		entry importer.VideoEntry
	}{
		{"missing year", importer.VideoEntry{Key: "v", Title: "T"}},
		{"year before 1700", importer.VideoEntry{Key: "v", Title: "T", YearLaunched: intPtr(1659)}},
		{"year after reference year", importer.VideoEntry{Key: "v", Title: "T", YearLaunched: intPtr(2030)}},
		{"blank title", importer.VideoEntry{Key: "v", YearLaunched: intPtr(2020)}},
		{"bad key", importer.VideoEntry{Key: "Video One", Title: "T", YearLaunched: intPtr(2020)}},
		{"bad file kind", importer.VideoEntry{Key: "v", Title: "T", YearLaunched: intPtr(2020),
			Files: []importer.FileEntry{{Path: "/a.mp4", Kind: "poster"}}}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.importer.Import(s.ctx, &importer.Manifest{Videos: []importer.VideoEntry{tt.entry}})
			s.Require().NoError(err)
			s.Require().Len(result.Rejections, 1)
			s.True(errors.IsBadRequest(result.Rejections[0]), result.Rejections[0].Error())
		})
	}
}

func (s *ImporterTestSuite) TestImport_NegativeYearAccepted() {
	m := &importer.Manifest{Videos: []importer.VideoEntry{{Key: "v", Title: "T", YearLaunched: intPtr(-300)}}}

	result, err := s.importer.Import(s.ctx, m)
	s.Require().NoError(err)
	s.Empty(result.Rejections)
	s.Equal(-300, result.Videos["v"].YearLaunched())
}

func (s *ImporterTestSuite) TestImport_InvalidCastMemberType() {
	m := &importer.Manifest{CastMembers: []importer.CastMemberEntry{
		{Key: "x", Name: "X", Type: intPtr(3)},
		{Key: "y", Name: "Y", Type: intPtr(0)},
	}}

	result, err := s.importer.Import(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Len(result.Rejections, 2)
	for _, r := range result.Rejections {
		s.ErrorIs(r, domain.ErrInvalidArgument)
	}
}

func (s *ImporterTestSuite) TestImport_FailFast() {
	imp := importer.NewImporter(s.publisher, logger.NewNoop(),
		importer.WithClock(testutil.Clock()), importer.WithFailFast(true))

	m := s.manifest()
	m.Genres[0].Categories = []string{"missing"}

	result, err := imp.Import(s.ctx, m)
	s.Require().Error(err)
	s.True(errors.IsBadRequest(err))

	var rejection importer.Rejection
	s.Require().ErrorAs(err, &rejection)
	s.Equal("dramedy", rejection.Key)
	s.True(errors.IsNotFound(rejection.Err))

	s.Len(result.Categories, 2)
	s.Empty(result.Videos)
	s.Zero(s.publisher.published(importer.EventImportCompleted))
}

func (s *ImporterTestSuite) TestImport_PublishFailure() {
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(stderrors.New("bus closed"))
	imp := importer.NewImporter(publisher, logger.NewNoop(), importer.WithClock(testutil.Clock()))

	result, err := imp.Import(s.ctx, s.manifest())
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	publisher.AssertNumberOfCalls(s.T(), "Publish", 1)
	s.Empty(result.Categories)
	s.Zero(result.Accepted())
}

func (s *ImporterTestSuite) TestImport_PublishFailureKeepsOnlyPublishedEntities() {
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e interfaces.Event) bool {
		return e.EventType() == domain.EventVideoRegistered
	})).Return(stderrors.New("bus closed"))
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	imp := importer.NewImporter(publisher, logger.NewNoop(), importer.WithClock(testutil.Clock()))

	result, err := imp.Import(s.ctx, s.manifest())
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	s.Empty(result.Videos)
	s.Len(result.Categories, 2)
	s.Len(result.Genres, 1)
	s.Len(result.CastMembers, 2)
	s.Equal(result.Accepted(), publisher.published(domain.EventCategoryRegistered)+
		publisher.published(domain.EventGenreRegistered)+
		publisher.published(domain.EventCastMemberRegistered))
}

func (s *ImporterTestSuite) TestImport_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.importer.Import(ctx, s.manifest())
	s.ErrorIs(err, context.Canceled)
	s.publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *ImporterTestSuite) TestImport_NilManifest() {
	_, err := s.importer.Import(s.ctx, nil)
	s.True(errors.IsBadRequest(err))
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}
