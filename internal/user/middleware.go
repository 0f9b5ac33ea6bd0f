package user

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
	"github.com/torres-leo/BudgetApp-backend/internal/validate"
)

// Body validators run before the handlers and reply 400 with every violated
// rule, in rule order. A body that fails to parse is treated as empty so the
// full rule list is reported.

func ValidateCreateAccount(c *fiber.Ctx) error {
	var req createAccountRequest
	_ = c.BodyParser(&req)

	var errs validate.Errors
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs.Add("name", "Name can't be empty.")
	}
	if len([]rune(name)) < 3 {
		errs.Add("name", "Name must be at least 3 characters long.")
	}
	if len(req.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters long.")
	}
	if !validate.Email(req.Email) {
		errs.Add("email", "Invalid email format.")
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

func ValidateLogin(c *fiber.Ctx) error {
	var req loginRequest
	_ = c.BodyParser(&req)

	var errs validate.Errors
	if !validate.Email(req.Email) {
		errs.Add("email", "Invalid email")
	}
	if req.Password == "" {
		errs.Add("password", "Password can't be empty.")
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

func ValidateConfirmToken(c *fiber.Ctx) error {
	var req tokenRequest
	_ = c.BodyParser(&req)

	if len(strings.TrimSpace(req.Token)) != auth.TokenLength {
		errs := validate.Errors{{Msg: "Invalid token", Path: "token"}}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

func ValidateForgotPassword(c *fiber.Ctx) error {
	var req loginRequest
	_ = c.BodyParser(&req)

	if !validate.Email(req.Email) {
		errs := validate.Errors{{Msg: "Invalid email format.", Path: "email"}}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

func ValidateResetPassword(c *fiber.Ctx) error {
	var errs validate.Errors
	if len(strings.TrimSpace(c.Params("token"))) != auth.TokenLength {
		errs.Add("token", "Invalid token")
	}

	var req resetPasswordRequest
	_ = c.BodyParser(&req)
	if len(req.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters long.")
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

func ValidateUpdatePassword(c *fiber.Ctx) error {
	var req updatePasswordRequest
	_ = c.BodyParser(&req)

	var errs validate.Errors
	if req.CurrentPassword == "" {
		errs.Add("current_password", "Current password can't be empty.")
	}
	if len(req.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters long.")
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

func ValidateCheckPassword(c *fiber.Ctx) error {
	var req checkPasswordRequest
	_ = c.BodyParser(&req)

	if req.Password == "" {
		errs := validate.Errors{{Msg: "Password can't be empty.", Path: "password"}}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}
