package repo

import (
	"testing"

	chorerepo "github.com/AlexLemna/chorebank/internal/repo/chore-repo"
	submissionrepo "github.com/AlexLemna/chorebank/internal/repo/submission-repo"
	transactionrepo "github.com/AlexLemna/chorebank/internal/repo/transaction-repo"
	userrepo "github.com/AlexLemna/chorebank/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ChoreRepo)
	assert.NotNil(t, repo.SubmissionRepo)
	assert.NotNil(t, repo.TransactionRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &chorerepo.Repository{}, repo.ChoreRepo)
	assert.IsType(t, &submissionrepo.Repository{}, repo.SubmissionRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
