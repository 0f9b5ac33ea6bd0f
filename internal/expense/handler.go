package expense

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/torres-leo/BudgetApp-backend/internal/budget"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// Create inserts an expense under the budget resolved by the chain; the
// parent reference always comes from the path, never the body.
func (h *Handler) Create(c *fiber.Ctx) error {
	b := budget.FromCtx(c)

	in, ok := InputFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	e := &Expense{Name: in.Name, Amount: in.Amount, BudgetID: b.ID}
	if _, err := h.Store.Create(c.UserContext(), e); err != nil {
		log.Error().Err(err).Int64("budget_id", b.ID).Msg("create expense")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON("Expense created successfully")
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	return c.JSON(FromCtx(c))
}

func (h *Handler) Update(c *fiber.Ctx) error {
	e := FromCtx(c)

	in, ok := InputFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	if err := h.Store.Update(c.UserContext(), e.ID, in); err != nil {
		log.Error().Err(err).Int64("expense_id", e.ID).Msg("update expense")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Expense updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	e := FromCtx(c)

	if err := h.Store.Delete(c.UserContext(), e.ID); err != nil {
		log.Error().Err(err).Int64("expense_id", e.ID).Msg("delete expense")
		return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON("Expense deleted successfully")
}
