package server

import (
	"time"

	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// anonymousConnectionLimit caps follower/following listings for
// unauthenticated viewers.
const anonymousConnectionLimit = 15

// connectionView is the shape of a follower/following entry for
// authenticated viewers: the user with their tweets and replies, minus
// password and timestamps.
type connectionView struct {
	ID        uint           `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	UserName  string         `json:"userName"`
	Email     string         `json:"email"`
	Birthday  time.Time      `json:"birthday"`
	Bio       string         `json:"bio"`
	Tweets    []models.Tweet `json:"tweets"`
	Replies   []models.Reply `json:"replies"`
}

func connectionViews(users []models.User) []connectionView {
	views := make([]connectionView, 0, len(users))
	for _, u := range users {
		views = append(views, connectionView{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			UserName:  u.UserName,
			Email:     u.Email,
			Birthday:  u.Birthday,
			Bio:       u.Bio,
			Tweets:    u.Tweets,
			Replies:   u.Replies,
		})
	}
	return views
}

func publicProfiles(users []models.User) []models.PublicProfile {
	profiles := make([]models.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.PublicProfile())
	}
	return profiles
}

// profileView is the user shape for authenticated viewers of another
// user's profile: Profile minus timestamps.
type profileView struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Birthday  time.Time `json:"birthday"`
	Bio       string    `json:"bio"`
}

// UserProfile handles GET /users/:userId. Authenticated viewers get
// the near-complete profile; anonymous viewers only userName and bio.
func (s *Server) UserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	if _, authed := middleware.UserID(c); authed {
		return ok(c, profileView{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			UserName:  user.UserName,
			Email:     user.Email,
			Birthday:  user.Birthday,
			Bio:       user.Bio,
		})
	}
	return ok(c, user.PublicProfile())
}

// UserTweets handles GET /users/:userId/tweets.
func (s *Server) UserTweets(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	tweets, err := s.tweetService.ListByUser(c.Context(), userID, false)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, tweets)
}

// UserReplies handles GET /users/:userId/replies.
func (s *Server) UserReplies(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	replies, err := s.replyService.ListByUser(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, replies)
}

// UserFavorites handles GET /users/:userId/favorites.
func (s *Server) UserFavorites(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	favorites, err := s.favoriteService.ListByUser(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, favorites)
}

// UserFollowers handles GET /users/:userId/followers. Anonymous
// viewers get at most 15 entries with userName and bio only.
func (s *Server) UserFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if _, authed := middleware.UserID(c); authed {
		followers, err := s.followService.Followers(c.Context(), userID, 0)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, connectionViews(followers))
	}

	followers, err := s.followService.Followers(c.Context(), userID, anonymousConnectionLimit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, publicProfiles(followers))
}

// UserFollowing handles GET /users/:userId/following.
func (s *Server) UserFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if _, authed := middleware.UserID(c); authed {
		following, err := s.followService.Following(c.Context(), userID, 0)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, connectionViews(following))
	}

	following, err := s.followService.Following(c.Context(), userID, anonymousConnectionLimit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, publicProfiles(following))
}

// FollowUser handles POST /users/:userId/follow.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	follow, err := s.followService.Follow(c.Context(), s.callerID(c), followingID)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, follow, "User was followed successfully!")
}

// UnfollowUser handles DELETE /users/:userId/follow.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), s.callerID(c), followingID); err != nil {
		return fail(c, err)
	}
	return okMessage(c, nil, "User was unfollowed successfully!")
}
