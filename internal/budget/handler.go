package budget

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// GetAll lists the principal's budgets, newest first.
func (h *Handler) GetAll(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized.")
	}

	budgets, err := h.Store.ListByUser(c.UserContext(), principal.ID)
	if err != nil {
		log.Error().Err(err).Msg("list budgets")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON(budgets)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized.")
	}

	in, ok := InputFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	b := &Budget{Name: in.Name, Amount: in.Amount, UserID: principal.ID}
	if _, err := h.Store.Create(c.UserContext(), b); err != nil {
		log.Error().Err(err).Msg("create budget")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON("Budget created successfully")
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	return c.JSON(FromCtx(c))
}

func (h *Handler) Update(c *fiber.Ctx) error {
	b := FromCtx(c)

	in, ok := InputFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	if err := h.Store.Update(c.UserContext(), b.ID, in); err != nil {
		log.Error().Err(err).Int64("budget_id", b.ID).Msg("update budget")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Budget updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	b := FromCtx(c)

	if err := h.Store.Delete(c.UserContext(), b.ID); err != nil {
		log.Error().Err(err).Int64("budget_id", b.ID).Msg("delete budget")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Budget deleted successfully")
}
