package budget

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
	"github.com/torres-leo/BudgetApp-backend/internal/validate"
)

// The :budgetId pipeline. Stages run in a fixed order: ValidateID, then
// Resolve, then RequireOwner. Each stage either calls the next handler or
// terminates the request, so an ownership failure is reported before any
// body validation downstream.

const budgetKey = "budget"
const inputKey = "budgetInput"

// ValidateID rejects a :budgetId path parameter that is not a positive
// integer.
func ValidateID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("budgetId"), 10, 64)
	if err != nil || id <= 0 {
		errs := validate.Errors{{Msg: "Invalid budget id", Path: "budgetId"}}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Next()
}

// Resolve loads the referenced budget exactly once and stores it in Locals
// for every later stage.
func Resolve(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := strconv.ParseInt(c.Params("budgetId"), 10, 64)

		b, err := store.FindByID(c.UserContext(), id)
		if err != nil {
			log.Error().Err(err).Int64("budget_id", id).Msg("resolve budget")
			return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
		}
		if b == nil {
			return fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}

		c.Locals(budgetKey, b)
		return c.Next()
	}
}

// RequireOwner compares the resolved budget's owning user against the
// authenticated principal.
func RequireOwner(c *fiber.Ctx) error {
	b := FromCtx(c)
	principal := auth.PrincipalFromCtx(c)
	if b == nil || principal == nil || b.UserID != principal.ID {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid action")
	}
	return c.Next()
}

// ValidateBody checks the create/update payload and stores the parsed
// Input in Locals. It runs after the ownership stages so access failures
// take precedence over shape failures.
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

// FromCtx returns the budget resolved earlier in the chain.
func FromCtx(c *fiber.Ctx) *Budget {
	if b, ok := c.Locals(budgetKey).(*Budget); ok {
		return b
	}
	return nil
}

// InputFromCtx returns the body parsed by ValidateBody.
func InputFromCtx(c *fiber.Ctx) (Input, bool) {
	in, ok := c.Locals(inputKey).(Input)
	return in, ok
}
