package choreservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	service.now = func() time.Time {
		return time.Date(2024, 11, 20, 12, 0, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, repo
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		choreName     string
		description   string
		value         float64
		limits        [7]int
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Successful creation",
			choreName:   "Clean Room",
			description: "Tidy up and vacuum",
			value:       5.0,
			limits:      [7]int{1, 1, 1, 1, 1, 1, 1},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Empty name",
			choreName:     "",
			description:   "Tidy up",
			value:         5.0,
			expectedError: ErrInvalidChore,
		},
		{
			name:          "Negative value",
			choreName:     "Clean Room",
			description:   "Tidy up",
			value:         -1.0,
			expectedError: ErrInvalidChore,
		},
		{
			name:          "Negative limit",
			choreName:     "Clean Room",
			description:   "Tidy up",
			value:         5.0,
			limits:        [7]int{1, -1, 1, 1, 1, 1, 1},
			expectedError: ErrInvalidChore,
		},
		{
			name:        "Storage error",
			choreName:   "Clean Room",
			description: "Tidy up",
			value:       5.0,
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			tpl, err := service.Create(context.Background(), tt.choreName, tt.description, tt.value, tt.limits)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, tpl.Active)
				assert.Equal(t, tt.choreName, tpl.Name)
				assert.Equal(t, tt.limits, tpl.Limits)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful update",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.ChoreTemplate{
					ID: 1, Name: "Old", Description: "old", Value: 1.0, Active: true,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Template not found",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrChoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			tpl, err := service.Update(context.Background(), tt.id, "Clean Room", "Tidy up", 5.0, [7]int{1, 1, 1, 1, 1, 1, 1})
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Clean Room", tpl.Name)
				assert.Equal(t, 5.0, tpl.Value)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name           string
		id             int
		prepareMock    func()
		expectedError  error
		expectedActive bool
	}{
		{
			name: "Deactivates an active template",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.ChoreTemplate{ID: 1, Name: "Clean Room", Active: true}, nil)
				repo.EXPECT().SetActive(gomock.Any(), 1, false).Return(nil)
			},
			expectedActive: false,
		},
		{
			name: "Reactivates an inactive template",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.ChoreTemplate{ID: 1, Name: "Clean Room", Active: false}, nil)
				repo.EXPECT().SetActive(gomock.Any(), 1, true).Return(nil)
			},
			expectedActive: true,
		},
		{
			name: "Template not found",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrChoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			tpl, err := service.Toggle(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedActive, tpl.Active)
			}
		})
	}
}

func TestListActive(t *testing.T) {
	service, repo := NewMock(t)

	expected := []domain.ChoreTemplate{{ID: 1, Name: "Clean Room", Active: true}}
	repo.EXPECT().FindActive(gomock.Any()).Return(expected, nil)

	templates, err := service.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, templates)
}
