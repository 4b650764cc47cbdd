package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jobboard/internal/session"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, token string, s *session.Session, ttl time.Duration) error {
	args := m.Called(ctx, token, s, ttl)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
