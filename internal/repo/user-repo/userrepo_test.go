package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/jackc/pgx/v5"
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

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT id, username, password_hash, role FROM users WHERE username = $1"

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "parent",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
					AddRow(1, "parent", "hashed_password", "parent")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("parent").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "parent",
				PasswordHash: "hashed_password",
				Role:         "parent",
			},
		},
		{
			name:     "User not found",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "parent",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("parent").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindChild(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT id, username, password_hash, role FROM users WHERE role = $1 ORDER BY id LIMIT 1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Child found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
					AddRow(2, "kiddo", "hashed_password", "child")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("child").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           2,
				Username:     "kiddo",
				PasswordHash: "hashed_password",
				Role:         "child",
			},
		},
		{
			name: "No child account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("child").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindChild(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			user: &domain.User{Username: "kiddo", PasswordHash: "hash", Role: "child"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(2)
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`)).
					WithArgs("kiddo", "hash", "child").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{Username: "kiddo", PasswordHash: "hash", Role: "child"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
					WithArgs("kiddo", "hash", "child").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 2, result.ID)
			}
		})
	}
}
