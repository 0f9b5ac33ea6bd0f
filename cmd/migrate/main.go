package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "migrations/migrations.sql", "SQL file to apply")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("pinging database")
	}

	sqlText, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("reading migrations file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info().Str("file", *file).Msg("applying migrations")
	if _, err := db.ExecContext(ctx, string(sqlText)); err != nil {
		log.Fatal().Err(err).Msg("applying migrations")
	}

	log.Info().Msg("migrations applied")
}
