package service

import (
	"context"
	"testing"

	"chirp/internal/models"
	"chirp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "hashed")
	bob := seedUser(t, db, "bob", "hashed")

	follow, err := svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, follow.FollowerID)
	assert.Equal(t, bob.ID, follow.FollowingID)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))

	// The edge can be recreated after unfollowing.
	_, err = svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestFollowSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "hashed")

	_, err := svc.Follow(ctx, alice.ID, alice.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidOperation, models.CodeOf(err))

	err = svc.Unfollow(ctx, alice.ID, alice.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidOperation, models.CodeOf(err))
}

func TestFollowDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "hashed")
	bob := seedUser(t, db, "bob", "hashed")

	_, err := svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.Follow(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeDuplicateFollow, models.CodeOf(err))

	// The reverse edge is a distinct pair.
	_, err = svc.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
}

func TestFollowMissingUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "hashed")

	_, err := svc.Follow(ctx, alice.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestUnfollowMissingEdge(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "hashed")
	bob := seedUser(t, db, "bob", "hashed")

	err := svc.Unfollow(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestFollowersAndFollowing(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "hashed")
	bob := seedUser(t, db, "bob", "hashed")
	carol := seedUser(t, db, "carol", "hashed")

	_, err := svc.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	followers, err := svc.Followers(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := svc.Following(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].UserName)

	limited, err := svc.Followers(ctx, alice.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
