package expense

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/torres-leo/BudgetApp-backend/internal/budget"
	"github.com/torres-leo/BudgetApp-backend/internal/validate"
)

// The :expenseId pipeline, registered after the budget stages so both
// entities are resolved before BelongsToBudget runs.

const expenseKey = "expense"
const inputKey = "expenseInput"

// ValidateID rejects an :expenseId path parameter that is not a positive
// integer.
func ValidateID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("expenseId"), 10, 64)
	if err != nil || id <= 0 {
		errs := validate.Errors{{Msg: "Invalid expense id", Path: "expenseId"}}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

// Resolve loads the referenced expense exactly once and stores it in
// Locals.
func Resolve(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := strconv.ParseInt(c.Params("expenseId"), 10, 64)

		e, err := store.FindByID(c.UserContext(), id)
		if err != nil {
			log.Error().Err(err).Int64("expense_id", id).Msg("resolve expense")
			return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
		}
		if e == nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		c.Locals(expenseKey, e)
		return c.Next()
	}
}

// BelongsToBudget verifies the resolved expense's parent is the budget from
// the path. Owning some other budget is not enough to touch this expense.
func BelongsToBudget(c *fiber.Ctx) error {
	b := budget.FromCtx(c)
	e := FromCtx(c)
	if b == nil || e == nil || e.BudgetID != b.ID {
		return fiber.NewError(fiber.StatusForbidden, "Invalid action")
	}
	return c.Next()
}

// ValidateBody checks the create/update payload and stores the parsed
// Input in Locals. Runs after ownership and parent checks.
func ValidateBody(c *fiber.Ctx) error {
	var req bodyRequest
	_ = c.BodyParser(&req)

	var errs validate.Errors
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "Name can't be empty.")
	}
	amount, amountErrs := validate.Amount("amount", req.Amount)
	errs = append(errs, amountErrs...)

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	c.Locals(inputKey, Input{Name: req.Name, Amount: amount})
	return c.Next()
}

// FromCtx returns the expense resolved earlier in the chain.
func FromCtx(c *fiber.Ctx) *Expense {
	if e, ok := c.Locals(expenseKey).(*Expense); ok {
		return e
	}
	return nil
}

// InputFromCtx returns the body parsed by ValidateBody.
func InputFromCtx(c *fiber.Ctx) (Input, bool) {
	in, ok := c.Locals(inputKey).(Input)
	return in, ok
}
