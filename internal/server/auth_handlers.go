package server

import (
	"time"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/service"
	"chirp/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// SignUp handles POST /sign-up.
func (s *Server) SignUp(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		UserName  string `json:"userName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Birthday  string `json:"birthday"`
		Bio       string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	switch {
	case req.FirstName == "":
		return fail(c, models.NewValidationError("first name is required."))
	case req.LastName == "":
		return fail(c, models.NewValidationError("last name is required."))
	case req.UserName == "":
		return fail(c, models.NewValidationError("username is required."))
	case req.Password == "":
		return fail(c, models.NewValidationError("password is required."))
	case req.Bio == "":
		return fail(c, models.NewValidationError("bio is required."))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}

	birthday, err := validation.ParseBirthday(req.Birthday, time.Now())
	if err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), service.BcryptCost)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  string(hashed),
		Birthday:  birthday,
		Bio:       req.Bio,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return fail(c, err)
	}

	if err := s.issueSession(c, user, "signup"); err != nil {
		return fail(c, err)
	}

	return ok(c, user.Profile())
}

// SignIn handles POST /sign-in. It accepts userName or email and
// answers unknown users and bad passwords identically so callers
// cannot probe which accounts exist.
func (s *Server) SignIn(c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"userName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	if req.Password == "" {
		return fail(c, models.NewValidationError("password is required."))
	}
	if req.UserName == "" && req.Email == "" {
		return fail(c, models.NewValidationError("username or email is required."))
	}

	var (
		user *models.User
		err  error
	)
	if req.UserName != "" {
		user, err = s.userRepo.GetByUserName(c.Context(), req.UserName)
	} else {
		user, err = s.userRepo.GetByEmail(c.Context(), req.Email)
	}
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return fail(c, models.NewInvalidCredentialsError())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return fail(c, models.NewInvalidCredentialsError())
	}

	if err := s.issueSession(c, user, "signin"); err != nil {
		return fail(c, err)
	}

	return okMessage(c, user.Profile(), "Signed-in successfully!")
}

// SignOut handles POST /sign-out by expiring the session cookie. The
// token itself stays valid until its expiry claim; there is no
// server-side revocation list.
func (s *Server) SignOut(c *fiber.Ctx) error {
	s.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Signed-out successfully!"})
}

// issueSession signs a fresh session token for the user and sets it as
// the session cookie.
func (s *Server) issueSession(c *fiber.Ctx, user *models.User, trigger string) error {
	signed, err := s.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		return models.NewInternalError(err)
	}

	s.setSessionCookie(c, signed)
	observability.SessionsIssued.WithLabelValues(trigger).Inc()
	return nil
}
