package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/pg"
	"go.uber.org/zap"
)

type SubmissionRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Submission, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Submission, error)
	FindByUserIDAndStatus(ctx context.Context, userID int, status string) ([]domain.Submission, error)
	Approve(ctx context.Context, id int, approvedAt time.Time) (bool, error)
	SumTemplateValueByStatus(ctx context.Context, userID int, status string) (float64, error)
}

type ChoreRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ChoreTemplate, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	SumByKind(ctx context.Context, userID int, kind string) (float64, error)
}

type UserRepo interface {
	FindChild(ctx context.Context) (*domain.User, error)
}

type Service struct {
	submissionRepo  SubmissionRepo
	choreRepo       ChoreRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	txManager       pg.TXManager
	now             func() time.Time
}

func New(submissionRepo SubmissionRepo, choreRepo ChoreRepo, transactionRepo TransactionRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		submissionRepo:  submissionRepo,
		choreRepo:       choreRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		now:             time.Now,
	}
}

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyApproved    = errors.New("submission already approved")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrEmptyDescription   = errors.New("description is required")
	ErrNoChildAccount     = errors.New("no child account found")
)

// DashboardSummary is recomputed from the full ledger on every call; no
// balance is ever cached, so it cannot drift from the transaction history.
type DashboardSummary struct {
	PendingEarnings  float64
	ApprovedEarnings float64
	TotalFines       float64
	TotalPayments    float64
	Balance          float64
	Submissions      []domain.Submission
	// PendingSubmissions is the approval queue: the subset of Submissions
	// still awaiting a parent decision, newest first.
	PendingSubmissions []domain.Submission
	Transactions       []domain.Transaction
}

// Approve marks a pending submission approved and credits its template's
// current value in one atomic step. Approving twice is a no-op: the status
// update and the chore transaction are emitted at most once per submission.
func (s *Service) Approve(ctx context.Context, submissionID int) error {
	sub, err := s.submissionRepo.FindByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubmissionNotFound
	}
	if sub.Status == domain.StatusApproved {
		zap.L().Info("submission already approved", zap.Int("submission_id", submissionID))
		return ErrAlreadyApproved
	}

	tpl, err := s.choreRepo.FindByID(ctx, sub.ChoreTemplateID)
	if err != nil {
		return err
	}
	if tpl == nil {
		return fmt.Errorf("chore template %d referenced by submission %d not found", sub.ChoreTemplateID, submissionID)
	}

	approvedAt := s.now().UTC()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// The pre-transaction read can race a concurrent approval; the
		// status-guarded update is the authoritative check. If the row was
		// no longer pending, no credit is written.
		approved, err := s.submissionRepo.Approve(ctx, sub.ID, approvedAt)
		if err != nil {
			return err
		}
		if !approved {
			return ErrAlreadyApproved
		}
		txn := &domain.Transaction{
			UserID:      sub.UserID,
			Kind:        domain.KindChore,
			Description: fmt.Sprintf("Approved: %s", tpl.Name),
			Amount:      tpl.Value,
			CreatedAt:   approvedAt,
		}
		return s.transactionRepo.Create(ctx, txn)
	})
	if errors.Is(err, ErrAlreadyApproved) {
		zap.L().Info("submission already approved", zap.Int("submission_id", submissionID))
		return ErrAlreadyApproved
	}
	if err != nil {
		zap.L().Error("can't approve submission: ", zap.Error(err))
		return err
	}

	zap.L().Info("submission approved", zap.Int("submission_id", submissionID), zap.String("chore", tpl.Name))
	return nil
}

func (s *Service) RecordFine(ctx context.Context, userID int, description string, amount float64) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	txn := &domain.Transaction{
		UserID:      userID,
		Kind:        domain.KindFine,
		Description: description,
		Amount:      amount,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		zap.L().Error("can't record fine: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) RecordPayment(ctx context.Context, userID int, amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	txn := &domain.Transaction{
		UserID:      userID,
		Kind:        domain.KindPayment,
		Description: "Payment made",
		Amount:      amount,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		zap.L().Error("can't record payment: ", zap.Error(err))
		return err
	}
	return nil
}

func validateAmount(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}
	return nil
}

// Child resolves the household's child account. Exactly one child is
// supported; callers pass its id to the other operations explicitly.
func (s *Service) Child(ctx context.Context) (*domain.User, error) {
	child, err := s.userRepo.FindChild(ctx)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrNoChildAccount
	}
	return child, nil
}

// GetDashboardSummary aggregates the user's full ledger:
// balance = approved earnings - fines - payments.
func (s *Service) GetDashboardSummary(ctx context.Context, userID int) (*DashboardSummary, error) {
	pending, err := s.submissionRepo.SumTemplateValueByStatus(ctx, userID, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := s.submissionRepo.SumTemplateValueByStatus(ctx, userID, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	fines, err := s.transactionRepo.SumByKind(ctx, userID, domain.KindFine)
	if err != nil {
		return nil, err
	}
	payments, err := s.transactionRepo.SumByKind(ctx, userID, domain.KindPayment)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pendingSubmissions, err := s.submissionRepo.FindByUserIDAndStatus(ctx, userID, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		PendingEarnings:    pending,
		ApprovedEarnings:   approved,
		TotalFines:         fines,
		TotalPayments:      payments,
		Balance:            approved - fines - payments,
		Submissions:        submissions,
		PendingSubmissions: pendingSubmissions,
		Transactions:       transactions,
	}, nil
}
