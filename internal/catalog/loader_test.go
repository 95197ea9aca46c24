package catalog_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/errors"
	mockclock "github.com/KirkDiggler/sim-catalog/internal/pkg/clock/mock"
	"github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots"
	snapshotsmock "github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots/mock"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
	"github.com/KirkDiggler/sim-catalog/internal/testutils"
)

type LoaderTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *snapshotsmock.MockRepository
	mockClock *mockclock.MockClock
	now       time.Time
	ctx       context.Context
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = snapshotsmock.NewMockRepository(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()
	s.ctx = context.Background()
}

func (s *LoaderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LoaderTestSuite) newLoader(opts ...catalog.Option) *catalog.Loader {
	loader, err := catalog.NewLoader(&catalog.LoaderConfig{
		Source:   s.mockRepo,
		Encoding: snapshot.EncodingBinary,
		Clock:    s.mockClock,
		Timeout:  time.Second,
		Options:  opts,
	})
	s.Require().NoError(err)
	return loader
}

func (s *LoaderTestSuite) sampleOutput() *snapshots.FetchOutput {
	return &snapshots.FetchOutput{
		Data:     testutils.EncodeSnapshot(s.T(), testutils.SampleSnapshot(), snapshot.EncodingBinary),
		Encoding: snapshot.EncodingBinary,
		Source:   "test",
	}
}

func (s *LoaderTestSuite) TestNewLoaderValidation() {
	testCases := []struct {
		name   string
		config *catalog.LoaderConfig
	}{
		{name: "nil config", config: nil},
		{name: "missing source", config: &catalog.LoaderConfig{}},
		{name: "bad encoding", config: &catalog.LoaderConfig{Source: s.mockRepo, Encoding: "xml"}},
		{name: "negative timeout", config: &catalog.LoaderConfig{Source: s.mockRepo, Timeout: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			loader, err := catalog.NewLoader(tc.config)
			s.Nil(loader)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *LoaderTestSuite) TestGetBeforeInitialize() {
	loader := s.newLoader()

	c, err := loader.Get()
	s.Nil(c)
	s.True(errors.IsFailedPrecondition(err))
	s.False(loader.Ready())
	s.True(loader.LoadedAt().IsZero())
}

func (s *LoaderTestSuite) TestInitializeLoadsOnce() {
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), &snapshots.FetchInput{Encoding: snapshot.EncodingBinary}).
		Return(s.sampleOutput(), nil).
		Times(1)

	loader := s.newLoader()

	first, err := loader.Initialize(s.ctx)
	s.Require().NoError(err)
	second, err := loader.Initialize(s.ctx)
	s.Require().NoError(err)
	got, err := loader.Get()
	s.Require().NoError(err)

	s.Same(first, second)
	s.Same(first, got)
	s.True(loader.Ready())
	s.Equal(s.now, loader.LoadedAt())

	select {
	case <-loader.Done():
	default:
		s.Fail("done channel should be closed")
	}
}

func (s *LoaderTestSuite) TestConcurrentInitializeSharesOneFetch() {
	release := make(chan struct{})
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *snapshots.FetchInput) (*snapshots.FetchOutput, error) {
			<-release
			return s.sampleOutput(), nil
		}).
		Times(1)

	loader := s.newLoader()

	const callers = 16
	results := make([]*catalog.Catalog, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = loader.Initialize(s.ctx)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range callers {
		s.Require().NoError(errs[i])
		s.Same(results[0], results[i])
	}
}

func (s *LoaderTestSuite) TestFailedLoadIsMemoized() {
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("origin down")).
		Times(1)

	loader := s.newLoader()

	_, err := loader.Initialize(s.ctx)
	var loadErr *catalog.LoadError
	s.Require().True(stderrors.As(err, &loadErr))
	s.Equal(catalog.StageFetch, loadErr.Stage)
	s.True(errors.IsUnavailable(err))

	_, again := loader.Initialize(s.ctx)
	s.Equal(err, again)

	c, getErr := loader.Get()
	s.Nil(c)
	s.Equal(err, getErr)
	s.False(loader.Ready())

	_, iconErr := loader.ItemIconData(s.ctx, testutils.ChestItemID)
	s.Equal(err, iconErr)
}

func (s *LoaderTestSuite) TestDecodeFailure() {
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(&snapshots.FetchOutput{Data: []byte("{not json"), Encoding: snapshot.EncodingJSON, Source: "file db.json"}, nil)

	_, err := s.newLoader().Initialize(s.ctx)

	var loadErr *catalog.LoadError
	s.Require().True(stderrors.As(err, &loadErr))
	s.Equal(catalog.StageDecode, loadErr.Stage)
	s.Equal("file db.json", loadErr.Source)
	s.True(errors.IsDataLoss(err))
	s.Contains(err.Error(), "during decode of file db.json")
}

func (s *LoaderTestSuite) TestBuildFailureWithStrictIDs() {
	dup := testutils.SampleSnapshot()
	dup.Gems = append(dup.Gems, dup.Gems[0])

	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(&snapshots.FetchOutput{
			Data:     testutils.EncodeSnapshot(s.T(), dup, snapshot.EncodingJSON),
			Encoding: snapshot.EncodingJSON,
		}, nil)

	_, err := s.newLoader(catalog.WithStrictIDs()).Initialize(s.ctx)

	var loadErr *catalog.LoadError
	s.Require().True(stderrors.As(err, &loadErr))
	s.Equal(catalog.StageBuild, loadErr.Stage)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestCallerCancelDoesNotAbortSharedLoad() {
	release := make(chan struct{})
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *snapshots.FetchInput) (*snapshots.FetchOutput, error) {
			select {
			case <-release:
				return s.sampleOutput(), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}).
		Times(1)

	loader := s.newLoader()

	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := loader.Initialize(ctx)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))

	close(release)
	<-loader.Done()

	c, err := loader.Initialize(s.ctx)
	s.Require().NoError(err)
	s.NotNil(c)
}

func (s *LoaderTestSuite) TestLoadTimeout() {
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *snapshots.FetchInput) (*snapshots.FetchOutput, error) {
			<-ctx.Done()
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeDeadlineExceeded, "fetch timed out")
		})

	loader, err := catalog.NewLoader(&catalog.LoaderConfig{
		Source:  s.mockRepo,
		Clock:   s.mockClock,
		Timeout: 20 * time.Millisecond,
	})
	s.Require().NoError(err)

	_, err = loader.Initialize(s.ctx)
	var loadErr *catalog.LoadError
	s.Require().True(stderrors.As(err, &loadErr))
	s.True(stderrors.Is(err, context.DeadlineExceeded))
}

func (s *LoaderTestSuite) TestIconData() {
	s.mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(s.sampleOutput(), nil)

	loader := s.newLoader()

	icon, err := loader.ItemIconData(s.ctx, testutils.ChestItemID)
	s.Require().NoError(err)
	s.Equal("inv_chest_plate_26", icon.Icon)

	icon, err = loader.ItemIconData(s.ctx, 424242)
	s.Require().NoError(err)
	s.Zero(icon)

	spell, err := loader.SpellIconData(s.ctx, 59625)
	s.Require().NoError(err)
	s.Equal("Berserking", spell.Name)
}
