package service

import (
	"github.com/AlexLemna/chorebank/internal/handlers/auth"
	"github.com/AlexLemna/chorebank/internal/handlers/chores"
	"github.com/AlexLemna/chorebank/internal/handlers/ledger"
	"github.com/AlexLemna/chorebank/internal/handlers/submissions"

	pkgauth "github.com/AlexLemna/chorebank/pkg/auth"

	"github.com/AlexLemna/chorebank/internal/pg"
	"github.com/AlexLemna/chorebank/internal/repo"
	authservice "github.com/AlexLemna/chorebank/internal/service/authservice"
	choreservice "github.com/AlexLemna/chorebank/internal/service/choreservice"
	ledgerservice "github.com/AlexLemna/chorebank/internal/service/ledgerservice"
	submissionservice "github.com/AlexLemna/chorebank/internal/service/submissionservice"
)

type Services struct {
	AuthService       auth.Service
	ChoreService      chores.Service
	SubmissionService submissions.Service
	LedgerService     ledger.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	choreService := choreservice.New(repo.ChoreRepo)
	submissionService := submissionservice.New(repo.ChoreRepo, repo.SubmissionRepo, txManager)
	ledgerService := ledgerservice.New(repo.SubmissionRepo, repo.ChoreRepo, repo.TransactionRepo, repo.UserRepo, txManager)

	return &Services{
		AuthService:       authService,
		ChoreService:      choreService,
		SubmissionService: submissionService,
		LedgerService:     ledgerService,
	}
}
