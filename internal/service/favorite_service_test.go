package service

import (
	"context"
	"testing"

	"chirp/internal/models"
	"chirp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAndUnfavorite(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewTweetRepository(db))
	ctx := context.Background()

	user := seedUser(t, db, "fan", "hashed")
	tweet := seedTweet(t, db, user.ID, "likable")

	favorite, err := svc.Favorite(ctx, user.ID, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, tweet.ID, favorite.TweetID)
	assert.Equal(t, tweet.Content, favorite.Tweet.Content)

	require.NoError(t, svc.Unfavorite(ctx, user.ID, tweet.ID))

	// Unfavoriting frees the pair for a fresh favorite.
	_, err = svc.Favorite(ctx, user.ID, tweet.ID)
	require.NoError(t, err)
}

func TestFavoriteDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewTweetRepository(db))
	ctx := context.Background()

	user := seedUser(t, db, "fan", "hashed")
	tweet := seedTweet(t, db, user.ID, "likable")

	_, err := svc.Favorite(ctx, user.ID, tweet.ID)
	require.NoError(t, err)

	_, err = svc.Favorite(ctx, user.ID, tweet.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeDuplicateFavorite, models.CodeOf(err))
}

func TestFavoriteMissingTweet(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewTweetRepository(db))
	ctx := context.Background()

	user := seedUser(t, db, "fan", "hashed")

	_, err := svc.Favorite(ctx, user.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestUnfavoriteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewTweetRepository(db))
	ctx := context.Background()

	user := seedUser(t, db, "fan", "hashed")
	tweet := seedTweet(t, db, user.ID, "never liked")

	err := svc.Unfavorite(ctx, user.ID, tweet.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestFavoriteListByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewTweetRepository(db))
	ctx := context.Background()

	user := seedUser(t, db, "fan", "hashed")
	first := seedTweet(t, db, user.ID, "first")
	second := seedTweet(t, db, user.ID, "second")

	_, err := svc.Favorite(ctx, user.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Favorite(ctx, user.ID, second.ID)
	require.NoError(t, err)

	favorites, err := svc.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "second", favorites[0].Tweet.Content)
}
