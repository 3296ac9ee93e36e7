package server

import (
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReply handles POST /replies.
func (s *Server) CreateReply(c *fiber.Ctx) error {
	var req struct {
		TweetID uint   `json:"tweetId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	reply, err := s.replyService.Create(c.Context(), s.callerID(c), req.TweetID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return okMessage(c, reply, "Reply was posted successfully!")
}
