package choreservice

import (
	"context"
	"errors"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, tpl *domain.ChoreTemplate) error
	Update(ctx context.Context, tpl *domain.ChoreTemplate) error
	FindByID(ctx context.Context, id int) (*domain.ChoreTemplate, error)
	FindAll(ctx context.Context) ([]domain.ChoreTemplate, error)
	FindActive(ctx context.Context) ([]domain.ChoreTemplate, error)
	SetActive(ctx context.Context, id int, active bool) error
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

var (
	ErrChoreNotFound = errors.New("chore template not found")
	ErrInvalidChore  = errors.New("invalid chore template")
)

func validate(name, description string, value float64, limits [7]int) error {
	if name == "" || description == "" {
		return ErrInvalidChore
	}
	if value < 0 {
		return ErrInvalidChore
	}
	for _, limit := range limits {
		if limit < 0 {
			return ErrInvalidChore
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, name, description string, value float64, limits [7]int) (*domain.ChoreTemplate, error) {
	if err := validate(name, description, value, limits); err != nil {
		return nil, err
	}

	tpl := &domain.ChoreTemplate{
		Name:        name,
		Description: description,
		Value:       value,
		Limits:      limits,
		Active:      true,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Save(ctx, tpl); err != nil {
		zap.L().Error("can't save chore template: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("chore template created", zap.String("name", name))
	return tpl, nil
}

func (s *Service) Update(ctx context.Context, id int, name, description string, value float64, limits [7]int) (*domain.ChoreTemplate, error) {
	if err := validate(name, description, value, limits); err != nil {
		return nil, err
	}

	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrChoreNotFound
	}

	tpl.Name = name
	tpl.Description = description
	tpl.Value = value
	tpl.Limits = limits

	if err := s.repo.Update(ctx, tpl); err != nil {
		zap.L().Error("can't update chore template: ", zap.Error(err))
		return nil, err
	}

	return tpl, nil
}

// Toggle flips the active flag and returns the new state. Deactivation hides
// the template from new submissions but keeps history intact.
func (s *Service) Toggle(ctx context.Context, id int) (*domain.ChoreTemplate, error) {
	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrChoreNotFound
	}

	tpl.Active = !tpl.Active
	if err := s.repo.SetActive(ctx, tpl.ID, tpl.Active); err != nil {
		zap.L().Error("can't toggle chore template: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("chore template toggled", zap.String("name", tpl.Name), zap.Bool("active", tpl.Active))
	return tpl, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.ChoreTemplate, error) {
	templates, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get chore templates", zap.Error(err))
		return nil, err
	}
	return templates, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.ChoreTemplate, error) {
	templates, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get active chore templates", zap.Error(err))
		return nil, err
	}
	return templates, nil
}
