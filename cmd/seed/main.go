package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/pg"
	"github.com/AlexLemna/chorebank/internal/repo"
	"github.com/AlexLemna/chorebank/internal/service/authservice"
	"github.com/AlexLemna/chorebank/pkg/auth"
)

// seed provisions the two household accounts. The HTTP surface has no
// registration endpoint on purpose: accounts are created once, here.
func main() {
	var (
		databaseURI    = flag.String("d", os.Getenv("DATABASE_URI"), "database connection string")
		parentName     = flag.String("parent", "parent", "parent account username")
		parentPassword = flag.String("parent-password", "", "parent account password")
		childName      = flag.String("child", "child", "child account username")
		childPassword  = flag.String("child-password", "", "child account password")
	)
	flag.Parse()

	if *databaseURI == "" {
		log.Fatal().Msg("database connection string is required (-d or DATABASE_URI)")
	}
	if *parentPassword == "" || *childPassword == "" {
		log.Fatal().Msg("both -parent-password and -child-password are required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, *databaseURI)
	if err != nil {
		log.Fatal().Err(err).Msg("can't connect to database")
	}
	defer pool.Close()

	if err := pg.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("can't run migrations")
	}

	repos := repo.New(pg.New(pool))
	authService := authservice.New(repos.UserRepo, &auth.HashService{}, &auth.JWTService{})

	seed := []struct {
		username string
		password string
		role     string
	}{
		{*parentName, *parentPassword, domain.RoleParent},
		{*childName, *childPassword, domain.RoleChild},
	}
	for _, account := range seed {
		_, err := authService.CreateAccount(ctx, account.username, account.password, account.role)
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken):
			log.Info().Str("username", account.username).Msg("account already exists, skipping")
		case err != nil:
			log.Fatal().Err(err).Str("username", account.username).Msg("can't create account")
		default:
			log.Info().Str("username", account.username).Str("role", account.role).Msg("account created")
		}
	}
}
