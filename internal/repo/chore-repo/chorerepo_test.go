package chorerepo

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

var choreRows = []string{
	"id", "name", "description", "value",
	"sunday_limit", "monday_limit", "tuesday_limit", "wednesday_limit",
	"thursday_limit", "friday_limit", "saturday_limit",
	"active", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.ChoreTemplate
	}{
		{
			name: "Template found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(choreRows).
					AddRow(1, "Clean Room", "Tidy up and vacuum", 5.0, 1, 1, 1, 1, 1, 1, 1, true, createdAt)
				mock.ExpectQuery("SELECT (.+) FROM chore_templates WHERE id = \\$1").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.ChoreTemplate{
				ID:          1,
				Name:        "Clean Room",
				Description: "Tidy up and vacuum",
				Value:       5.0,
				Limits:      [7]int{1, 1, 1, 1, 1, 1, 1},
				Active:      true,
				CreatedAt:   createdAt,
			},
		},
		{
			name: "Template not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM chore_templates WHERE id = \\$1").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM chore_templates WHERE id = \\$1").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
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

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(choreRows).
		AddRow(1, "Clean Room", "Tidy up", 5.0, 1, 0, 1, 0, 1, 0, 1, true, createdAt).
		AddRow(2, "Dishes", "Load the dishwasher", 2.5, 0, 0, 0, 0, 0, 0, 0, true, createdAt)
	mock.ExpectQuery("SELECT (.+) FROM chore_templates WHERE active = TRUE").
		WillReturnRows(rows)

	templates, err := repo.FindActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, templates, 2)
	assert.Equal(t, [7]int{1, 0, 1, 0, 1, 0, 1}, templates[0].Limits)
	assert.Equal(t, "Dishes", templates[1].Name)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	tpl := &domain.ChoreTemplate{
		Name:        "Clean Room",
		Description: "Tidy up",
		Value:       5.0,
		Limits:      [7]int{1, 1, 1, 1, 1, 1, 1},
		Active:      true,
		CreatedAt:   time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves template",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(7)
				mock.ExpectQuery("INSERT INTO chore_templates").
					WithArgs(tpl.Name, tpl.Description, tpl.Value, 1, 1, 1, 1, 1, 1, 1, true, tpl.CreatedAt).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO chore_templates").
					WithArgs(tpl.Name, tpl.Description, tpl.Value, 1, 1, 1, 1, 1, 1, 1, true, tpl.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tpl)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, tpl.ID)
			}
		})
	}
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE chore_templates`)).
		WithArgs(false, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetActive(context.Background(), 1, false)
	assert.NoError(t, err)
}
