package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/torres-leo/BudgetApp-backend/internal/budget"
	"github.com/torres-leo/BudgetApp-backend/internal/expense"
	"github.com/torres-leo/BudgetApp-backend/internal/user"
)

// Router wires the handler chains. Parameterized routes always run the same
// ordered pipeline: id shape check, resolution, ownership, parent
// consistency for nested resources, then body validation, then the handler.
type Router struct {
	Users    *user.Handler
	Budgets  *budget.Handler
	Expenses *expense.Handler

	BudgetStore  budget.Store
	ExpenseStore expense.Store

	AuthMW fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	authGroup := app.Group("/api/auth", RateLimitAuth())
	authGroup.Post("/create-account", user.ValidateCreateAccount, r.Users.CreateAccount)
	authGroup.Post("/confirm-account", user.ValidateConfirmToken, r.Users.ConfirmAccount)
	authGroup.Post("/login", user.ValidateLogin, r.Users.Login)
	authGroup.Post("/forgot-password", user.ValidateForgotPassword, r.Users.ForgotPassword)
	authGroup.Post("/validate-token", user.ValidateConfirmToken, r.Users.ValidateToken)
	authGroup.Post("/reset-password/:token", user.ValidateResetPassword, r.Users.ResetPassword)
	authGroup.Get("/user", r.AuthMW, r.Users.GetUser)
	authGroup.Post("/update-password", r.AuthMW, user.ValidateUpdatePassword, r.Users.UpdatePassword)
	authGroup.Post("/check-password", r.AuthMW, user.ValidateCheckPassword, r.Users.CheckPassword)

	budgets := app.Group("/api/budgets", r.AuthMW)
	budgets.Get("/", r.Budgets.GetAll)
	budgets.Post("/", budget.ValidateBody, r.Budgets.Create)

	resolveBudget := budget.Resolve(r.BudgetStore)
	budgets.Get("/:budgetId",
		budget.ValidateID, resolveBudget, budget.RequireOwner,
		r.Budgets.GetByID)
	budgets.Put("/:budgetId",
		budget.ValidateID, resolveBudget, budget.RequireOwner, budget.ValidateBody,
		r.Budgets.Update)
	budgets.Delete("/:budgetId",
		budget.ValidateID, resolveBudget, budget.RequireOwner,
		r.Budgets.Delete)

	resolveExpense := expense.Resolve(r.ExpenseStore)
	budgets.Post("/:budgetId/expenses",
		budget.ValidateID, resolveBudget, budget.RequireOwner, expense.ValidateBody,
		r.Expenses.Create)
	budgets.Get("/:budgetId/expenses/:expenseId",
		budget.ValidateID, resolveBudget, budget.RequireOwner,
		expense.ValidateID, resolveExpense, expense.BelongsToBudget,
		r.Expenses.GetByID)
	budgets.Put("/:budgetId/expenses/:expenseId",
		budget.ValidateID, resolveBudget, budget.RequireOwner,
		expense.ValidateID, resolveExpense, expense.BelongsToBudget, expense.ValidateBody,
		r.Expenses.Update)
	budgets.Delete("/:budgetId/expenses/:expenseId",
		budget.ValidateID, resolveBudget, budget.RequireOwner,
		expense.ValidateID, resolveExpense, expense.BelongsToBudget,
		r.Expenses.Delete)
}
