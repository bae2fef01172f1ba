package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"leadpath/internal/cache"
	"leadpath/internal/catalog"
	"leadpath/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const catalogTTL = 5 * time.Minute

func TestCatalogService_LoadsAndCaches(t *testing.T) {
	repo := new(MockCatalogRepository)
	mc := new(MockCache)
	svc := NewCatalogService(repo, mc, catalogTTL)
	ctx := context.Background()

	key := cache.CatalogSnapshotKey()
	mc.On("Get", ctx, key).Return("", domain.ErrCacheMiss).Once()
	repo.On("LoadCatalog", mock.Anything).Return(testCatalog(), nil).Once()
	mc.On("Set", mock.Anything, key, mock.AnythingOfType("string"), catalogTTL).Return(nil).Once()

	c, err := svc.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, c.Paths, 3)

	repo.AssertExpectations(t)
	mc.AssertExpectations(t)
}

func TestCatalogService_ServesFromCache(t *testing.T) {
	repo := new(MockCatalogRepository)
	mc := new(MockCache)
	svc := NewCatalogService(repo, mc, catalogTTL)
	ctx := context.Background()

	data, err := json.Marshal(testCatalog())
	require.NoError(t, err)
	mc.On("Get", ctx, cache.CatalogSnapshotKey()).Return(string(data), nil).Once()

	c, err := svc.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), c)
	repo.AssertNotCalled(t, "LoadCatalog", mock.Anything)
}

func TestCatalogService_CacheFailuresFallThrough(t *testing.T) {
	repo := new(MockCatalogRepository)
	mc := new(MockCache)
	svc := NewCatalogService(repo, mc, catalogTTL)
	ctx := context.Background()

	mc.On("Get", ctx, mock.Anything).Return("", errors.New("connection refused")).Once()
	repo.On("LoadCatalog", mock.Anything).Return(testCatalog(), nil).Once()
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, catalogTTL).Return(errors.New("connection refused")).Once()

	c, err := svc.Catalog(ctx)
	require.NoError(t, err)
	assert.NotNil(t, c)
	mc.AssertExpectations(t)
}

func TestCatalogService_UndecodableSnapshotIsIgnored(t *testing.T) {
	repo := new(MockCatalogRepository)
	mc := new(MockCache)
	svc := NewCatalogService(repo, mc, catalogTTL)
	ctx := context.Background()

	mc.On("Get", ctx, mock.Anything).Return("{not json", nil).Once()
	repo.On("LoadCatalog", mock.Anything).Return(testCatalog(), nil).Once()
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, catalogTTL).Return(nil).Once()

	_, err := svc.Catalog(ctx)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCatalogService_NilCache(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := NewCatalogService(repo, nil, catalogTTL)
	ctx := context.Background()

	repo.On("LoadCatalog", mock.Anything).Return(testCatalog(), nil).Twice()

	_, err := svc.Catalog(ctx)
	require.NoError(t, err)
	_, err = svc.Catalog(ctx)
	require.NoError(t, err)
	assert.NoError(t, svc.Invalidate(ctx))
	repo.AssertExpectations(t)
}

func TestCatalogService_SourceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure becomes internal", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("LoadCatalog", mock.Anything).Return(nil, errors.New("ORA-12541: TNS:no listener"))
		_, err := NewCatalogService(repo, nil, catalogTTL).Catalog(ctx)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})

	t.Run("invalid catalog is rejected", func(t *testing.T) {
		bad := testCatalog()
		bad.Paths[1].ID = bad.Paths[0].ID
		repo := new(MockCatalogRepository)
		repo.On("LoadCatalog", mock.Anything).Return(bad, nil)

		_, err := NewCatalogService(repo, nil, catalogTTL).Catalog(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}

func TestCatalogService_ConcurrentLoadsAreCoalesced(t *testing.T) {
	repo := new(MockCatalogRepository)
	release := make(chan time.Time)
	repo.On("LoadCatalog", mock.Anything).
		WaitUntil(release).
		Return(testCatalog(), nil)
	svc := NewCatalogService(repo, nil, catalogTTL)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Catalog(context.Background())
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Less(t, len(repo.Calls), 8)
}

func TestCatalogService_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	repo := new(MockCatalogRepository)
	release := make(chan time.Time)
	var loadErr error
	repo.On("LoadCatalog", mock.Anything).
		WaitUntil(release).
		Run(func(args mock.Arguments) { loadErr = args.Get(0).(context.Context).Err() }).
		Return(testCatalog(), nil).Once()
	svc := NewCatalogService(repo, nil, catalogTTL)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Catalog(firstCtx)
		firstErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	second := make(chan *domain.Catalog, 1)
	go func() {
		c, err := svc.Catalog(context.Background())
		assert.NoError(t, err)
		second <- c
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	c := <-second
	require.NotNil(t, c)
	assert.Len(t, c.Paths, 3)
	assert.NoError(t, loadErr)
	repo.AssertExpectations(t)
}

func TestCatalogService_Lookups(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("LoadCatalog", mock.Anything).Return(testCatalog(), nil)
	svc := NewCatalogService(repo, nil, catalogTTL)
	ctx := context.Background()

	p, err := svc.Path(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Communication Excellence", p.Title)

	_, err = svc.Path(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrPathNotFound)

	paths, err := svc.Paths(ctx, domain.PathFilter{Role: "tech-team"})
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	paths, err = svc.Paths(ctx, domain.PathFilter{Difficulty: domain.DifficultyIntermediate})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, int64(6), paths[0].ID)

	roles, err := svc.Roles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	goals, err := svc.Goals(ctx)
	require.NoError(t, err)
	assert.Contains(t, goals, "Create Team Unity")
}

func TestCatalogService_Invalidate(t *testing.T) {
	mc := new(MockCache)
	svc := NewCatalogService(new(MockCatalogRepository), mc, catalogTTL)
	ctx := context.Background()
	key := cache.CatalogSnapshotKey()

	mc.On("Delete", ctx, key).Return(nil).Once()
	assert.NoError(t, svc.Invalidate(ctx))

	mc.On("Delete", ctx, key).Return(domain.ErrCacheMiss).Once()
	assert.NoError(t, svc.Invalidate(ctx))

	mc.On("Delete", ctx, key).Return(errors.New("READONLY")).Once()
	assert.Error(t, svc.Invalidate(ctx))
	mc.AssertExpectations(t)
}

func TestReloadOnChange(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates then warms", func(t *testing.T) {
		svc := new(MockCatalogService)
		invalidated := svc.On("Invalidate", ctx).Return(nil).Once()
		svc.On("Catalog", ctx).Return(testCatalog(), nil).Once().NotBefore(invalidated)

		ReloadOnChange(svc)(ctx)
		svc.AssertExpectations(t)
	})

	t.Run("skips warm when invalidate fails", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Invalidate", ctx).Return(domain.NewInternalError("failed to invalidate catalog cache", errors.New("READONLY"))).Once()

		ReloadOnChange(svc)(ctx)
		svc.AssertNotCalled(t, "Catalog", mock.Anything)
	})

	t.Run("file source end to end", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("goals: [A]\n"), 0o600))

		mc := new(MockCache)
		key := cache.CatalogSnapshotKey()
		svc := NewCatalogService(catalog.NewFileRepository(path), mc, catalogTTL)

		mc.On("Delete", ctx, key).Return(domain.ErrCacheMiss).Once()
		mc.On("Get", ctx, key).Return("", domain.ErrCacheMiss).Once()
		mc.On("Set", mock.Anything, key, mock.MatchedBy(func(v string) bool {
			return strings.Contains(v, `"goals":["A","B"]`)
		}), catalogTTL).Return(nil).Once()

		require.NoError(t, os.WriteFile(path, []byte("goals: [A, B]\n"), 0o600))
		ReloadOnChange(svc)(ctx)
		mc.AssertExpectations(t)
	})
}
