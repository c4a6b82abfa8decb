package testutil

import (
	"context"
	"testing"
	"time"

	"lolatlas/pkg/models/champion"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the catalog service tests.
// ============================================================================

// Champion details fetcher mock implementation.
type MockChampionDetailsFetcher struct {
	mock.Mock
}

func (m *MockChampionDetailsFetcher) GetChampionDetails(ctx context.Context, version string, championID string) (*champion.Champion, error) {
	args := m.Called(ctx, version, championID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*champion.Champion), args.Error(1)
}

// Stored champion details mock implementation.
type MockChampionDetailSource struct {
	mock.Mock
}

func (m *MockChampionDetailSource) Load(ctx context.Context, version, championID string) (*champion.Champion, error) {
	args := m.Called(ctx, version, championID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*champion.Champion), args.Error(1)
}

// MemCache mock implementation.
type MockMemCache[T any] struct {
	mock.Mock
}

func (m *MockMemCache[T]) Close() {
	m.Called()
}

func (m *MockMemCache[T]) Set(key string, value T, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache[T]) Delete(key string) {
	m.Called(key)
}

func (m *MockMemCache[T]) Get(key string) (T, bool) {
	args := m.Called(key)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Bool(1)
	}
	return args.Get(0).(T), args.Bool(1)
}
