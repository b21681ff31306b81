package submissionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/pg"
	"github.com/AlexLemna/chorebank/internal/quota"
	"go.uber.org/zap"
)

type ChoreRepo interface {
	FindActive(ctx context.Context) ([]domain.ChoreTemplate, error)
}

type SubmissionRepo interface {
	Save(ctx context.Context, sub *domain.Submission) error
	CountForDate(ctx context.Context, userID, templateID int, day time.Time) (int, error)
}

type Service struct {
	choreRepo      ChoreRepo
	submissionRepo SubmissionRepo
	txManager      pg.TXManager
}

func New(choreRepo ChoreRepo, submissionRepo SubmissionRepo, txManager pg.TXManager) *Service {
	return &Service{
		choreRepo:      choreRepo,
		submissionRepo: submissionRepo,
		txManager:      txManager,
	}
}

// Claim is one template's portion of a batch submission.
type Claim struct {
	Count int
	Note  string
}

// Rejection explains why a whole claim was refused. Quota rejections are
// warnings, not errors: the rest of the batch still goes through.
type Rejection struct {
	ChoreID   int
	ChoreName string
	Reason    string
}

// GetAvailability reports, per active template, whether the user may submit
// on the given day and how many submissions remain.
func (s *Service) GetAvailability(ctx context.Context, userID int, day time.Time) (map[int]quota.Availability, error) {
	templates, err := s.choreRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	availability := make(map[int]quota.Availability, len(templates))
	for _, tpl := range templates {
		count, err := s.submissionRepo.CountForDate(ctx, userID, tpl.ID, day)
		if err != nil {
			return nil, err
		}
		availability[tpl.ID] = quota.Check(quota.LimitForDay(tpl, day), count)
	}
	return availability, nil
}

// SubmitBatch admits a batch of chore claims for the given day. Claims with a
// non-positive count are skipped; claims against templates that are not
// active are ignored. A claim that exceeds its daily limit is rejected whole
// with a reason, without affecting the other claims. All admitted submissions
// commit in one transaction: a storage failure leaves nothing behind.
func (s *Service) SubmitBatch(ctx context.Context, userID int, claims map[int]Claim, day time.Time) ([]string, []Rejection, error) {
	templates, err := s.choreRepo.FindActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	var submitted []string
	var rejections []Rejection

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, tpl := range templates {
			claim, ok := claims[tpl.ID]
			if !ok || claim.Count <= 0 {
				continue
			}

			limit := quota.LimitForDay(tpl, day)
			// Counts are re-derived per template as the batch is admitted, so
			// earlier inserts in the same batch are included.
			count, err := s.submissionRepo.CountForDate(ctx, userID, tpl.ID, day)
			if err != nil {
				return err
			}

			if limit > 0 {
				remaining := limit - count
				if claim.Count > remaining {
					reason := "Daily limit already reached"
					if remaining > 0 {
						reason = fmt.Sprintf("Only %d more allowed today (tried to submit %d)", remaining, claim.Count)
					}
					rejections = append(rejections, Rejection{
						ChoreID:   tpl.ID,
						ChoreName: tpl.Name,
						Reason:    reason,
					})
					continue
				}
			}

			var note *string
			if claim.Note != "" {
				n := claim.Note
				note = &n
			}
			for i := 0; i < claim.Count; i++ {
				sub := &domain.Submission{
					UserID:          userID,
					ChoreTemplateID: tpl.ID,
					Status:          domain.StatusPending,
					SubmittedAt:     day,
					Note:            note,
				}
				if err := s.submissionRepo.Save(ctx, sub); err != nil {
					return err
				}
				submitted = append(submitted, tpl.Name)
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't submit chore batch: ", zap.Error(err))
		return nil, nil, err
	}

	if len(submitted) > 0 {
		zap.L().Info("chores submitted", zap.Int("user_id", userID), zap.Int("count", len(submitted)))
	}
	return submitted, rejections, nil
}
