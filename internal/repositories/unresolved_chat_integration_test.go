//go:build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"finvox/internal/models"
	"finvox/internal/repositories"
	"finvox/internal/seed"
	"finvox/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnresolvedChatRepository_Lifecycle(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	chats := repositories.NewUnresolvedChatRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)

	chat := &models.UnresolvedChat{
		CustomerID: f.CustomerID(),
		AccountID:  f.AccountID(),
		SessionID:  uuid.NewString(),
		Summary:    "Caller disputed a penalty charge; needs agent callback.",
	}
	require.NoError(t, chats.Create(ctx, chat))

	t.Run("born open", func(t *testing.T) {
		got, err := chats.GetByID(ctx, chat.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ResolvedAt)
		assert.True(t, got.Open())
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("listed while open", func(t *testing.T) {
		open, err := chats.ListOpen(ctx)
		require.NoError(t, err)

		var found bool
		for _, c := range open {
			if c.ID == chat.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("resolve stamps the time", func(t *testing.T) {
		resolvedAt := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, chats.Resolve(ctx, chat.ID, resolvedAt))

		got, err := chats.GetByID(ctx, chat.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ResolvedAt)
		assert.WithinDuration(t, resolvedAt, *got.ResolvedAt, time.Second)
		assert.False(t, got.Open())
	})

	t.Run("cannot resolve twice", func(t *testing.T) {
		err := chats.Resolve(ctx, chat.ID, time.Now().UTC())
		assert.ErrorIs(t, err, repositories.ErrChatAlreadyResolved)
	})

	t.Run("resolving unknown chat", func(t *testing.T) {
		err := chats.Resolve(ctx, 999999999, time.Now().UTC())
		assert.ErrorIs(t, err, repositories.ErrChatNotFound)
	})
}

func TestUnresolvedChatRepository_CreateValidation(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	chats := repositories.NewUnresolvedChatRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)

	t.Run("requires summary", func(t *testing.T) {
		err := chats.Create(ctx, &models.UnresolvedChat{
			CustomerID: f.CustomerID(),
			SessionID:  uuid.NewString(),
		})
		assert.ErrorIs(t, err, repositories.ErrInvalidChatData)
	})

	t.Run("rejects pre-resolved records", func(t *testing.T) {
		now := time.Now().UTC()
		err := chats.Create(ctx, &models.UnresolvedChat{
			CustomerID: f.CustomerID(),
			SessionID:  uuid.NewString(),
			Summary:    "already closed",
			ResolvedAt: &now,
		})
		assert.ErrorIs(t, err, repositories.ErrInvalidChatData)
	})
}

func TestUnresolvedChatRepository_ListByCustomer(t *testing.T) {
	ts := testutil.GetTestStore(t)
	ctx := context.Background()
	chats := repositories.NewUnresolvedChatRepository(ts.Store.DB())

	f, err := seed.NewFixture()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, chats.Create(ctx, &models.UnresolvedChat{
			CustomerID: f.CustomerID(),
			SessionID:  uuid.NewString(),
			Summary:    "escalation",
		}))
	}

	list, err := chats.ListByCustomer(ctx, f.CustomerID())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
