package server

import (
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Me handles GET /me.
func (s *Server) Me(c *fiber.Ctx) error {
	user, err := s.userService.GetByID(c.Context(), s.callerID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, user.Profile())
}

// MyTweets handles GET /me/tweets.
func (s *Server) MyTweets(c *fiber.Ctx) error {
	tweets, err := s.tweetService.ListByUser(c.Context(), s.callerID(c), false)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, tweets)
}

// MyReplies handles GET /me/replies.
func (s *Server) MyReplies(c *fiber.Ctx) error {
	replies, err := s.replyService.ListByUser(c.Context(), s.callerID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, replies)
}

// MyTweetsAndReplies handles GET /me/tweets-and-replies.
func (s *Server) MyTweetsAndReplies(c *fiber.Ctx) error {
	tweets, err := s.tweetService.ListByUser(c.Context(), s.callerID(c), true)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, tweets)
}

// MyFavorites handles GET /me/favorites.
func (s *Server) MyFavorites(c *fiber.Ctx) error {
	favorites, err := s.favoriteService.ListByUser(c.Context(), s.callerID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, favorites)
}

// MyFollowers handles GET /me/followers.
func (s *Server) MyFollowers(c *fiber.Ctx) error {
	followers, err := s.followService.Followers(c.Context(), s.callerID(c), 0)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, connectionViews(followers))
}

// MyFollowing handles GET /me/following.
func (s *Server) MyFollowing(c *fiber.Ctx) error {
	following, err := s.followService.Following(c.Context(), s.callerID(c), 0)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, connectionViews(following))
}

// ChangeUserName handles PUT /me/change-username.
func (s *Server) ChangeUserName(c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"userName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.ChangeUserName(c.Context(), s.callerID(c), req.UserName)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, user.Profile(), "username was updated successfully.")
}

// ChangePassword handles PUT /me/change-password.
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.ChangePassword(c.Context(), s.callerID(c), req.OldPassword, req.NewPassword)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, user.Profile(), "password was updated successfully.")
}

// ChangeBio handles PUT /me/change-bio.
func (s *Server) ChangeBio(c *fiber.Ctx) error {
	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.ChangeBio(c.Context(), s.callerID(c), req.Bio)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, user.Profile(), "bio was updated successfully.")
}
