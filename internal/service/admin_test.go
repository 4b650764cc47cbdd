package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"jobboard/internal/repository"
	repoMocks "jobboard/internal/repository/mocks"
)

func TestAdminService_CollectionAllowList(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAdminRepository)
	svc := NewAdminService(mRepo)

	for _, coll := range []string{"countries", "sessions", "blog_posts", ""} {
		_, err := svc.Find(ctx, FindRequest{Collection: coll})
		assert.ErrorIs(t, err, ErrCollectionNotAllowed, "find %q", coll)

		_, err = svc.InsertOne(ctx, coll, map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrCollectionNotAllowed, "insert %q", coll)

		_, _, err = svc.UpdateOne(ctx, coll, map[string]any{"a": 1}, map[string]any{"$set": map[string]any{"a": 2}})
		assert.ErrorIs(t, err, ErrCollectionNotAllowed, "update %q", coll)

		_, err = svc.DeleteOne(ctx, coll, map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrCollectionNotAllowed, "delete %q", coll)
	}

	// Nothing may reach the repository.
	mRepo.AssertNotCalled(t, "Find")
	mRepo.AssertNotCalled(t, "InsertOne")
	mRepo.AssertNotCalled(t, "UpdateOne")
	mRepo.AssertNotCalled(t, "DeleteOne")
}

func TestAdminService_CapabilityTable(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAdminRepository)
	svc := NewAdminService(mRepo)

	// The audit trail is append-and-read only.
	_, _, err := svc.UpdateOne(ctx, "audit_logs", map[string]any{"id": "x"}, map[string]any{"$set": map[string]any{"action": "y"}})
	assert.ErrorIs(t, err, ErrOperationNotAllowed)

	_, err = svc.DeleteOne(ctx, "audit_logs", map[string]any{"id": "x"})
	assert.ErrorIs(t, err, ErrOperationNotAllowed)

	mRepo.On("Find", ctx, "audit_logs", mock.Anything).Return([]bson.M{}, nil)
	_, err = svc.Find(ctx, FindRequest{Collection: "audit_logs"})
	assert.NoError(t, err)

	mRepo.On("InsertOne", ctx, "audit_logs", mock.Anything).Return("id-1", nil)
	_, err = svc.InsertOne(ctx, "audit_logs", map[string]any{"model": "job"})
	assert.NoError(t, err)
}

func TestAdminService_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and caps", func(t *testing.T) {
		mRepo := new(repoMocks.MockAdminRepository)
		svc := NewAdminService(mRepo)

		mRepo.On("Find", ctx, "jobs", mock.MatchedBy(func(q repository.AdminQuery) bool {
			return q.Limit == 50 && q.Skip == 0
		})).Return([]bson.M{{"id": "j1"}}, nil).Once()

		docs, err := svc.Find(ctx, FindRequest{Collection: "jobs"})
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		// A huge requested limit is capped.
		mRepo.On("Find", ctx, "jobs", mock.MatchedBy(func(q repository.AdminQuery) bool {
			return q.Limit == 500
		})).Return([]bson.M{}, nil).Once()

		_, err = svc.Find(ctx, FindRequest{Collection: "jobs", Limit: 100000})
		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("sort and projection pass through", func(t *testing.T) {
		mRepo := new(repoMocks.MockAdminRepository)
		svc := NewAdminService(mRepo)

		mRepo.On("Find", ctx, "jobs", mock.MatchedBy(func(q repository.AdminQuery) bool {
			return len(q.Sort) == 2 &&
				q.Sort[0].Key == "featured" && q.Sort[0].Value == -1 &&
				q.Sort[1].Key == "created_at" && q.Sort[1].Value == -1 &&
				q.Projection["title"] == 1
		})).Return([]bson.M{}, nil)

		_, err := svc.Find(ctx, FindRequest{
			Collection: "jobs",
			Projection: map[string]int{"title": 1},
			Sort:       [][2]any{{"featured", float64(-1)}, {"created_at", float64(-1)}},
		})
		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("non-numeric sort direction rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockAdminRepository)
		svc := NewAdminService(mRepo)

		_, err := svc.Find(ctx, FindRequest{
			Collection: "jobs",
			Sort:       [][2]any{{"created_at", "desc"}},
		})
		assert.ErrorIs(t, err, ErrBadQuery)
		mRepo.AssertNotCalled(t, "Find")
	})

	t.Run("unsupported operator rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockAdminRepository)
		svc := NewAdminService(mRepo)

		_, err := svc.Find(ctx, FindRequest{
			Collection: "jobs",
			Filter:     map[string]any{"$where": "sleep(1000)"},
		})
		assert.ErrorIs(t, err, ErrBadQuery)
		mRepo.AssertNotCalled(t, "Find")
	})
}

func TestAdminService_UpdateOne(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitized update passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockAdminRepository)
		svc := NewAdminService(mRepo)

		mRepo.On("UpdateOne", ctx, "applications",
			bson.M{"id": "a1"},
			bson.M{"$set": map[string]any{"status": "screening"}},
		).Return(int64(1), int64(1), nil)

		matched, modified, err := svc.UpdateOne(ctx, "applications",
			map[string]any{"id": "a1"},
			map[string]any{"$set": map[string]any{"status": "screening"}},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("bare field replacement rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockAdminRepository)
		svc := NewAdminService(mRepo)

		_, _, err := svc.UpdateOne(ctx, "applications",
			map[string]any{"id": "a1"},
			map[string]any{"status": "screening"},
		)
		assert.ErrorIs(t, err, ErrBadQuery)
		mRepo.AssertNotCalled(t, "UpdateOne")
	})
}

func TestAdminService_DeleteOne(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAdminRepository)
	svc := NewAdminService(mRepo)

	// An empty filter would match an arbitrary document.
	_, err := svc.DeleteOne(ctx, "jobs", map[string]any{})
	assert.ErrorIs(t, err, ErrBadQuery)

	mRepo.On("DeleteOne", ctx, "jobs", bson.M{"id": "j1"}).Return(int64(1), nil)
	deleted, err := svc.DeleteOne(ctx, "jobs", map[string]any{"id": "j1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestAdminService_InsertOne(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockAdminRepository)
	svc := NewAdminService(mRepo)

	_, err := svc.InsertOne(ctx, "jobs", map[string]any{"$set": map[string]any{"a": 1}})
	assert.ErrorIs(t, err, ErrBadQuery)

	mRepo.On("InsertOne", ctx, "jobs", bson.M{"id": "j9", "title": "Nurse - Doha"}).Return("j9", nil)
	id, err := svc.InsertOne(ctx, "jobs", map[string]any{"id": "j9", "title": "Nurse - Doha"})
	require.NoError(t, err)
	assert.Equal(t, "j9", id)
}
