package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 11, 21, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		txn       *domain.Transaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves transaction",
			txn: &domain.Transaction{
				UserID:      2,
				Kind:        domain.KindChore,
				Description: "Approved: Clean Room",
				Amount:      5.0,
				CreatedAt:   createdAt,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(3)
				mock.ExpectQuery("INSERT INTO transactions").
					WithArgs(2, "chore", "Approved: Clean Room", 5.0, createdAt).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			txn: &domain.Transaction{
				UserID:      2,
				Kind:        domain.KindFine,
				Description: "Lost library book",
				Amount:      2.0,
				CreatedAt:   createdAt,
			},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO transactions").
					WithArgs(2, "fine", "Lost library book", 2.0, createdAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), tt.txn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, tt.txn.ID)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 11, 21, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "user_id", "kind", "description", "amount", "created_at"}).
		AddRow(2, 2, "fine", "Lost library book", 2.0, createdAt).
		AddRow(1, 2, "chore", "Approved: Clean Room", 5.0, createdAt.Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE user_id = \\$1").
		WithArgs(2).
		WillReturnRows(rows)

	txns, err := repo.FindByUserID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, "fine", txns[0].Kind)
}

func TestRepository_SumByKind(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE user_id = $1 AND kind = $2
    `

	tests := []struct {
		name      string
		kind      string
		mockSetup func()
		expectErr bool
		total     float64
	}{
		{
			name: "Sums fines",
			kind: "fine",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(4.5)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2, "fine").
					WillReturnRows(rows)
			},
			expectErr: false,
			total:     4.5,
		},
		{
			name: "Database error",
			kind: "payment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2, "payment").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			total:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			total, err := repo.SumByKind(context.Background(), 2, tt.kind)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.total, total)
		})
	}
}
