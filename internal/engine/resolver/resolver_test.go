package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/scribibble/dpnd/internal/core/domain"
	"github.com/scribibble/dpnd/internal/core/ports"
	"github.com/scribibble/dpnd/internal/core/ports/mocks"
	"github.com/scribibble/dpnd/internal/engine/resolver"
)

// nopTracer keeps span wiring out of the way of traversal assertions.
type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) RecordError(error) {}
func (nopSpan) End()              {}

func newTestResolver(t *testing.T) (*resolver.Resolver, *mocks.MockBomStore, *mocks.MockVCSBackend, *mocks.MockPathResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := mocks.NewMockBomStore(ctrl)
	backend := mocks.NewMockVCSBackend(ctrl)
	paths := mocks.NewMockPathResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return resolver.New(store, backend, paths, logger, nopTracer{}), store, backend, paths
}

func TestResolver_Populate_EmptyBom(t *testing.T) {
	r, _, _, _ := newTestResolver(t)

	// No fetches, no path resolution, success.
	err := r.Populate(context.Background(), filepath.Join(t.TempDir(), "app", "latest"), domain.NewBom())
	require.NoError(t, err)
}

func TestResolver_Populate_SelfIsNeverFetched(t *testing.T) {
	r, _, _, _ := newTestResolver(t)

	bom := domain.NewBom()
	bom.SetSelf()

	err := r.Populate(context.Background(), filepath.Join(t.TempDir(), "app", "latest"), bom)
	require.NoError(t, err)
}

func TestResolver_Populate_TransitiveScenario(t *testing.T) {
	r, store, backend, paths := newTestResolver(t)

	work := t.TempDir()
	appDir := filepath.Join(work, "app", "latest")
	libADir := filepath.Join(work, "libA", "v1")
	libBDir := filepath.Join(work, "libB", "v2")

	appBom := domain.NewBom()
	appBom.SetSelf()
	appBom.Set("libA", domain.Requirement{URL: "u1", Ref: "tagA", Dir: "v1", Depth: 1})

	libABom := domain.NewBom()
	libABom.SetSelf()
	libABom.Set("libB", domain.Requirement{URL: "u2", Ref: "tagB", Dir: "v2", Depth: 0})

	// libA resolves against app's root; libB against libA's root. With the
	// flat layout both are the same directory.
	paths.EXPECT().Resolve(work, "libA", "v1").Return(libADir, nil)
	backend.EXPECT().PopulateRef(gomock.Any(), libADir, "u1", "tagA", 1).Return(nil)
	store.EXPECT().Load(libADir).Return(libABom, nil)

	paths.EXPECT().Resolve(work, "libB", "v2").Return(libBDir, nil)
	backend.EXPECT().PopulateRef(gomock.Any(), libBDir, "u2", "tagB", 0).Return(nil)
	store.EXPECT().Load(libBDir).Return(domain.NewBom(), nil)

	err := r.Populate(context.Background(), appDir, appBom)
	require.NoError(t, err)
}

func TestResolver_Populate_SiblingsResolveIndependently(t *testing.T) {
	r, store, backend, paths := newTestResolver(t)

	work := t.TempDir()
	appDir := filepath.Join(work, "app", "latest")

	bom := domain.NewBom()
	bom.Set("libA", domain.Requirement{URL: "u1", Ref: "r1", Dir: "v1"})
	bom.Set("libB", domain.Requirement{URL: "u2", Ref: "r2", Dir: "v1"})

	// Deterministic order: libA before libB.
	gomock.InOrder(
		backend.EXPECT().PopulateRef(gomock.Any(), filepath.Join(work, "libA", "v1"), "u1", "r1", 0).Return(nil),
		backend.EXPECT().PopulateRef(gomock.Any(), filepath.Join(work, "libB", "v1"), "u2", "r2", 0).Return(nil),
	)
	paths.EXPECT().Resolve(work, "libA", "v1").Return(filepath.Join(work, "libA", "v1"), nil)
	paths.EXPECT().Resolve(work, "libB", "v1").Return(filepath.Join(work, "libB", "v1"), nil)
	store.EXPECT().Load(gomock.Any()).Return(domain.NewBom(), nil).Times(2)

	err := r.Populate(context.Background(), appDir, bom)
	require.NoError(t, err)
}

func TestResolver_Populate_FetchFailureAbortsTraversal(t *testing.T) {
	r, _, backend, paths := newTestResolver(t)

	work := t.TempDir()
	appDir := filepath.Join(work, "app", "latest")

	bom := domain.NewBom()
	bom.Set("a-lib", domain.Requirement{URL: "u1", Ref: "r1", Dir: "v1"})
	bom.Set("b-lib", domain.Requirement{URL: "u2", Ref: "r2", Dir: "v1"})

	fetchErr := zerr.New("remote unreachable")
	paths.EXPECT().Resolve(work, "a-lib", "v1").Return(filepath.Join(work, "a-lib", "v1"), nil)
	backend.EXPECT().PopulateRef(gomock.Any(), gomock.Any(), "u1", "r1", 0).Return(fetchErr)
	// b-lib must never be attempted: first failure is fatal.

	err := r.Populate(context.Background(), appDir, bom)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote unreachable")
}

func TestResolver_Populate_MalformedDependencyBomAborts(t *testing.T) {
	r, store, backend, paths := newTestResolver(t)

	work := t.TempDir()
	appDir := filepath.Join(work, "app", "latest")
	libADir := filepath.Join(work, "libA", "v1")

	bom := domain.NewBom()
	bom.Set("libA", domain.Requirement{URL: "u1", Ref: "r1", Dir: "v1"})

	paths.EXPECT().Resolve(work, "libA", "v1").Return(libADir, nil)
	backend.EXPECT().PopulateRef(gomock.Any(), libADir, "u1", "r1", 0).Return(nil)
	store.EXPECT().Load(libADir).Return(nil, domain.ErrMalformedBom)

	err := r.Populate(context.Background(), appDir, bom)
	require.ErrorIs(t, err, domain.ErrMalformedBom)
}

func TestResolver_Populate_CycleDetected(t *testing.T) {
	r, store, backend, paths := newTestResolver(t)

	work := t.TempDir()
	aDir := filepath.Join(work, "compA", "latest")
	bDir := filepath.Join(work, "compB", "latest")

	aBom := domain.NewBom()
	aBom.Set("compB", domain.Requirement{URL: "ub", Ref: "latest", Dir: "latest"})

	bBom := domain.NewBom()
	bBom.Set("compA", domain.Requirement{URL: "ua", Ref: "latest", Dir: "latest"})

	paths.EXPECT().Resolve(work, "compB", "latest").Return(bDir, nil)
	backend.EXPECT().PopulateRef(gomock.Any(), bDir, "ub", "latest", 0).Return(nil)
	store.EXPECT().Load(bDir).Return(bBom, nil)

	paths.EXPECT().Resolve(work, "compA", "latest").Return(aDir, nil)
	backend.EXPECT().PopulateRef(gomock.Any(), aDir, "ua", "latest", 0).Return(nil)
	store.EXPECT().Load(aDir).Return(aBom, nil)

	// Resolving compA's BOM again reaches compB, which is still on the
	// resolution path.
	err := r.Populate(context.Background(), aDir, aBom)
	require.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestResolver_Populate_DiamondIsNotACycle(t *testing.T) {
	r, store, backend, paths := newTestResolver(t)

	work := t.TempDir()
	appDir := filepath.Join(work, "app", "latest")
	libCDir := filepath.Join(work, "libC", "v1")

	appBom := domain.NewBom()
	appBom.Set("libA", domain.Requirement{URL: "ua", Ref: "ra", Dir: "v1"})
	appBom.Set("libB", domain.Requirement{URL: "ub", Ref: "rb", Dir: "v1"})

	needsC := domain.NewBom()
	needsC.Set("libC", domain.Requirement{URL: "uc", Ref: "rc", Dir: "v1"})

	paths.EXPECT().Resolve(work, "libA", "v1").Return(filepath.Join(work, "libA", "v1"), nil)
	paths.EXPECT().Resolve(work, "libB", "v1").Return(filepath.Join(work, "libB", "v1"), nil)
	paths.EXPECT().Resolve(work, "libC", "v1").Return(libCDir, nil).Times(2)

	backend.EXPECT().PopulateRef(gomock.Any(), filepath.Join(work, "libA", "v1"), "ua", "ra", 0).Return(nil)
	backend.EXPECT().PopulateRef(gomock.Any(), filepath.Join(work, "libB", "v1"), "ub", "rb", 0).Return(nil)
	// Both branches re-fetch libC: population never skips a visited version.
	backend.EXPECT().PopulateRef(gomock.Any(), libCDir, "uc", "rc", 0).Return(nil).Times(2)

	store.EXPECT().Load(filepath.Join(work, "libA", "v1")).Return(needsC, nil)
	store.EXPECT().Load(filepath.Join(work, "libB", "v1")).Return(needsC, nil)
	store.EXPECT().Load(libCDir).Return(domain.NewBom(), nil).Times(2)

	err := r.Populate(context.Background(), appDir, appBom)
	require.NoError(t, err)
}

func TestResolver_Populate_DoesNotChangeWorkingDirectory(t *testing.T) {
	r, store, backend, paths := newTestResolver(t)

	before, err := os.Getwd()
	require.NoError(t, err)

	work := t.TempDir()
	bom := domain.NewBom()
	bom.Set("libA", domain.Requirement{URL: "u", Ref: "r", Dir: "v1"})

	paths.EXPECT().Resolve(gomock.Any(), "libA", "v1").Return(filepath.Join(work, "libA", "v1"), nil)
	backend.EXPECT().PopulateRef(gomock.Any(), gomock.Any(), "u", "r", 0).Return(nil)
	store.EXPECT().Load(gomock.Any()).Return(domain.NewBom(), nil)

	require.NoError(t, r.Populate(context.Background(), filepath.Join(work, "app", "latest"), bom))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after, "resolution threads paths explicitly instead of chdir")
}

func TestResolver_Populate_PathResolutionFailureAborts(t *testing.T) {
	r, _, _, paths := newTestResolver(t)

	work := t.TempDir()
	bom := domain.NewBom()
	bom.Set("libA", domain.Requirement{URL: "u", Ref: "r", Dir: "v1"})

	paths.EXPECT().Resolve(gomock.Any(), "libA", "v1").Return("", domain.ErrTargetCreateFailed)

	err := r.Populate(context.Background(), filepath.Join(work, "app", "latest"), bom)
	require.ErrorIs(t, err, domain.ErrTargetCreateFailed)
}
