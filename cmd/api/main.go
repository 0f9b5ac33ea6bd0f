package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/torres-leo/BudgetApp-backend/internal/auth"
	"github.com/torres-leo/BudgetApp-backend/internal/budget"
	"github.com/torres-leo/BudgetApp-backend/internal/config"
	"github.com/torres-leo/BudgetApp-backend/internal/expense"
	"github.com/torres-leo/BudgetApp-backend/internal/httpx"
	"github.com/torres-leo/BudgetApp-backend/internal/mail"
	"github.com/torres-leo/BudgetApp-backend/internal/router"
	"github.com/torres-leo/BudgetApp-backend/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if !cfg.Production() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("creating pgx pool")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("pinging database")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: httpx.ErrorHandler,
	})

	app.Use(router.CorsMiddleware(cfg.CorsOrigin))
	app.Use(router.RequestLogger(log.Logger))

	mailer := mail.NewClient(cfg.MailToken, cfg.MailFrom)
	if cfg.MailEndpoint != "" {
		mailer.Endpoint = cfg.MailEndpoint
	}
	authMailer := &mail.AuthMailer{Mailer: mailer}

	userRepo := user.NewRepository(pool)
	budgetRepo := budget.NewRepository(pool)
	expenseRepo := expense.NewRepository(pool)

	secret := []byte(cfg.JWTSecret)

	r := &router.Router{
		Users:        user.NewHandler(userRepo, authMailer, secret),
		Budgets:      budget.NewHandler(budgetRepo),
		Expenses:     expense.NewHandler(expenseRepo),
		BudgetStore:  budgetRepo,
		ExpenseStore: expenseRepo,
		AuthMW:       auth.Middleware(secret, userRepo),
	}
	r.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
