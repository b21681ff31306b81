package submissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var submissionRows = []string{
	"id", "user_id", "chore_template_id", "status", "submitted_at", "approved_at", "note",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	submittedAt := time.Date(2024, 11, 20, 15, 30, 0, 0, time.UTC)
	note := "done before dinner"

	tests := []struct {
		name      string
		sub       *domain.Submission
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves submission",
			sub: &domain.Submission{
				UserID:          2,
				ChoreTemplateID: 1,
				Status:          domain.StatusPending,
				SubmittedAt:     submittedAt,
				Note:            &note,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(10)
				mock.ExpectQuery("INSERT INTO submissions").
					WithArgs(2, 1, "pending", submittedAt, &note).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			sub: &domain.Submission{
				UserID:          2,
				ChoreTemplateID: 1,
				Status:          domain.StatusPending,
				SubmittedAt:     submittedAt,
			},
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO submissions").
					WithArgs(2, 1, "pending", submittedAt, (*string)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.sub)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, tt.sub.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	submittedAt := time.Date(2024, 11, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Submission
	}{
		{
			name: "Submission found",
			id:   10,
			mockSetup: func() {
				rows := pgxmock.NewRows(submissionRows).
					AddRow(10, 2, 1, "pending", submittedAt, (*time.Time)(nil), (*string)(nil))
				mock.ExpectQuery("SELECT (.+) FROM submissions WHERE id = \\$1").
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Submission{
				ID:              10,
				UserID:          2,
				ChoreTemplateID: 1,
				Status:          "pending",
				SubmittedAt:     submittedAt,
			},
		},
		{
			name: "Submission not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM submissions WHERE id = \\$1").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByUserIDAndStatus(t *testing.T) {
	repo, mock := NewMock(t)
	submittedAt := time.Date(2024, 11, 20, 15, 30, 0, 0, time.UTC)

	rows := pgxmock.NewRows(submissionRows).
		AddRow(11, 2, 3, "pending", submittedAt, (*time.Time)(nil), (*string)(nil))
	mock.ExpectQuery("SELECT (.+) FROM submissions WHERE user_id = \\$1 AND status = \\$2").
		WithArgs(2, "pending").
		WillReturnRows(rows)

	subs, err := repo.FindByUserIDAndStatus(context.Background(), 2, "pending")
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
	assert.Equal(t, 11, subs[0].ID)
	assert.Equal(t, "pending", subs[0].Status)
}

func TestRepository_CountForDate(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)

	query := `
        SELECT COUNT(*)
        FROM submissions
        WHERE user_id = $1 AND chore_template_id = $2 AND submitted_at::date = $3::date
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Counts submissions for the day",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"count"}).AddRow(2)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2, 1, day).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2, 1, day).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountForDate(context.Background(), 2, 1, day)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)
	approvedAt := time.Date(2024, 11, 21, 9, 0, 0, 0, time.UTC)

	t.Run("Flips a pending submission", func(t *testing.T) {
		mock.ExpectExec("UPDATE submissions").
			WithArgs("approved", approvedAt, 10, "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		approved, err := repo.Approve(context.Background(), 10, approvedAt)
		assert.NoError(t, err)
		assert.True(t, approved)
	})

	t.Run("Reports no update when the row is no longer pending", func(t *testing.T) {
		mock.ExpectExec("UPDATE submissions").
			WithArgs("approved", approvedAt, 10, "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		approved, err := repo.Approve(context.Background(), 10, approvedAt)
		assert.NoError(t, err)
		assert.False(t, approved)
	})
}

func TestRepository_SumTemplateValueByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(12.5)
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(2, "approved").
		WillReturnRows(rows)

	total, err := repo.SumTemplateValueByStatus(context.Background(), 2, "approved")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, total)
}
