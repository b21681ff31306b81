package repo

import (
	"github.com/AlexLemna/chorebank/internal/pg"
	chorerepo "github.com/AlexLemna/chorebank/internal/repo/chore-repo"
	submissionrepo "github.com/AlexLemna/chorebank/internal/repo/submission-repo"
	transactionrepo "github.com/AlexLemna/chorebank/internal/repo/transaction-repo"
	userrepo "github.com/AlexLemna/chorebank/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	ChoreRepo       *chorerepo.Repository
	SubmissionRepo  *submissionrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ChoreRepo:       chorerepo.New(conn),
		SubmissionRepo:  submissionrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
	}
}
