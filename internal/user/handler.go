package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
	"github.com/torres-leo/BudgetApp-backend/internal/mail"
)

type Handler struct {
	Store    Store
	Mail     *mail.AuthMailer
	Secret   []byte
	NewToken auth.TokenSource
}

func NewHandler(store Store, mailer *mail.AuthMailer, secret []byte) *Handler {
	return &Handler{
		Store:    store,
		Mail:     mailer,
		Secret:   secret,
		NewToken: auth.NewToken,
	}
}

func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var req createAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	ctx := c.UserContext()

	existing, err := h.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("create account: lookup email")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "Email is already use")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("create account: hash password")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	token := h.NewToken()
	u := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Token:        &token,
	}

	if _, err := h.Store.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fiber.NewError(fiber.StatusConflict, "Email is already use")
		}
		log.Error().Err(err).Msg("create account: insert user")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	if err := h.Mail.SendConfirmation(ctx, u.Email, u.Name, token); err != nil {
		log.Error().Err(err).Str("email", u.Email).Msg("create account: send confirmation email")
	}

	return c.Status(fiber.StatusCreated).JSON("User created successfully")
}

func (h *Handler) ConfirmAccount(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	ctx := c.UserContext()

	u, err := h.Store.FindByToken(ctx, req.Token)
	if err != nil {
		log.Error().Err(err).Msg("confirm account: lookup token")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}
	if u == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	if err := h.Store.Confirm(ctx, u.ID); err != nil {
		log.Error().Err(err).Msg("confirm account: update user")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Account confirmed")
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	ctx := c.UserContext()

	u, err := h.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("login: lookup email")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}
	if u == nil {
		return fiber.NewError(fiber.StatusNotFound, "Email not found")
	}

	if !u.Confirmed {
		return fiber.NewError(fiber.StatusForbidden, "This account has not yet been confirmed")
	}

	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
	}

	token, err := auth.GenerateJWT(h.Secret, u.ID)
	if err != nil {
		log.Error().Err(err).Msg("login: sign token")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON(token)
}

func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	ctx := c.UserContext()

	u, err := h.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("forgot password: lookup email")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}
	if u == nil {
		return fiber.NewError(fiber.StatusNotFound, "Email not found")
	}

	token := h.NewToken()
	if err := h.Store.SaveToken(ctx, u.ID, &token); err != nil {
		log.Error().Err(err).Msg("forgot password: save token")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	if err := h.Mail.SendPasswordReset(ctx, u.Email, u.Name, token); err != nil {
		log.Error().Err(err).Str("email", u.Email).Msg("forgot password: send reset email")
	}

	return c.JSON("We've sent you an email with instructions to reset your password")
}

func (h *Handler) ValidateToken(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	u, err := h.Store.FindByToken(c.UserContext(), req.Token)
	if err != nil {
		log.Error().Err(err).Msg("validate token: lookup token")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}
	if u == nil {
		return fiber.NewError(fiber.StatusNotFound, "Invalid Token")
	}

	return c.JSON("Token is valid")
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	ctx := c.UserContext()

	u, err := h.Store.FindByToken(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("reset password: lookup token")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}
	if u == nil {
		return fiber.NewError(fiber.StatusNotFound, "Invalid Token")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("reset password: hash password")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	if err := h.Store.UpdatePassword(ctx, u.ID, hash, true); err != nil {
		log.Error().Err(err).Msg("reset password: update user")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Password reset successfully")
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized.")
	}
	return c.JSON(principal)
}

func (h *Handler) UpdatePassword(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized.")
	}

	var req updatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	ctx := c.UserContext()

	u, err := h.Store.FindByID(ctx, principal.ID)
	if err != nil || u == nil {
		log.Error().Err(err).Msg("update password: lookup user")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	if !auth.CheckPassword(req.CurrentPassword, u.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("update password: hash password")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	if err := h.Store.UpdatePassword(ctx, u.ID, hash, false); err != nil {
		log.Error().Err(err).Msg("update password: update user")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Password updated successfully")
}

func (h *Handler) CheckPassword(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized.")
	}

	var req checkPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	u, err := h.Store.FindByID(c.UserContext(), principal.ID)
	if err != nil || u == nil {
		log.Error().Err(err).Msg("check password: lookup user")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
	}

	return c.JSON("Password is correct")
}
