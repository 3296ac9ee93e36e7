package server

import (
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// feedReply is the reduced reply shape inside the tweet feed.
type feedReply struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// feedTweet is the reduced tweet shape in the feed: the author
// username is flattened and replies carry theirs the same way.
type feedTweet struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Content  string      `json:"content"`
	Replies  []feedReply `json:"replies"`
}

func feedViews(tweets []models.Tweet) []feedTweet {
	views := make([]feedTweet, 0, len(tweets))
	for _, t := range tweets {
		replies := make([]feedReply, 0, len(t.Replies))
		for _, r := range t.Replies {
			replies = append(replies, feedReply{
				ID:       r.ID,
				Username: r.User.UserName,
				Content:  r.Content,
			})
		}
		views = append(views, feedTweet{
			ID:       t.ID,
			Username: t.User.UserName,
			Content:  t.Content,
			Replies:  replies,
		})
	}
	return views
}

// Feed handles GET /tweets.
func (s *Server) Feed(c *fiber.Ctx) error {
	tweets, err := s.tweetService.Feed(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, feedViews(tweets))
}

// CreateTweet handles POST /tweets.
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Create(c.Context(), s.callerID(c), req.Content)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, tweet)
}

// DeleteTweet handles DELETE /tweets/:tweetId.
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	tweetID, err := s.parseID(c, "tweetId")
	if err != nil {
		return nil
	}

	tweet, err := s.tweetService.Delete(c.Context(), s.callerID(c), tweetID)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, tweet, "tweet was deleted successfully!")
}

// FavoriteTweet handles POST /tweets/:tweetId/favorites.
func (s *Server) FavoriteTweet(c *fiber.Ctx) error {
	tweetID, err := s.parseID(c, "tweetId")
	if err != nil {
		return nil
	}

	favorite, err := s.favoriteService.Favorite(c.Context(), s.callerID(c), tweetID)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, favorite, "Tweet was successfully added to favorites!")
}

// UnfavoriteTweet handles DELETE /tweets/:tweetId/favorites.
func (s *Server) UnfavoriteTweet(c *fiber.Ctx) error {
	tweetID, err := s.parseID(c, "tweetId")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.Unfavorite(c.Context(), s.callerID(c), tweetID); err != nil {
		return fail(c, err)
	}
	return okMessage(c, nil, "Tweet was successfully removed from favorites!")
}
