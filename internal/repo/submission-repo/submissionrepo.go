package submissionrepo

import (
	"context"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, sub *domain.Submission) error {
	query := `
        INSERT INTO submissions (user_id, chore_template_id, status, submitted_at, note)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, sub.UserID, sub.ChoreTemplateID, sub.Status, sub.SubmittedAt, sub.Note).Scan(&sub.ID)
	if err != nil {
		zap.L().Error("can't save submission", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Submission, error) {
	query := `
        SELECT id, user_id, chore_template_id, status, submitted_at, approved_at, note
        FROM submissions
        WHERE id = $1
    `
	var sub domain.Submission
	err := r.db.QueryRow(ctx, query, id).
		Scan(&sub.ID, &sub.UserID, &sub.ChoreTemplateID, &sub.Status, &sub.SubmittedAt, &sub.ApprovedAt, &sub.Note)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find submission", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Submission, error) {
	query := `
        SELECT id, user_id, chore_template_id, status, submitted_at, approved_at, note
        FROM submissions
        WHERE user_id = $1
        ORDER BY submitted_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindByUserIDAndStatus(ctx context.Context, userID int, status string) ([]domain.Submission, error) {
	query := `
        SELECT id, user_id, chore_template_id, status, submitted_at, approved_at, note
        FROM submissions
        WHERE user_id = $1 AND status = $2
        ORDER BY submitted_at DESC
    `
	return r.findMany(ctx, query, userID, status)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Submission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		err := rows.Scan(&sub.ID, &sub.UserID, &sub.ChoreTemplateID, &sub.Status, &sub.SubmittedAt, &sub.ApprovedAt, &sub.Note)
		if err != nil {
			zap.L().Error("can't scan submission row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// CountForDate counts how many times the user has submitted the template on
// the given calendar day. Timestamps are naive UTC; comparison is date-only.
func (r *Repository) CountForDate(ctx context.Context, userID, templateID int, day time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM submissions
        WHERE user_id = $1 AND chore_template_id = $2 AND submitted_at::date = $3::date
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, templateID, day).Scan(&count)
	if err != nil {
		zap.L().Error("can't count submissions for date", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Approve flips a pending submission to approved. The status guard makes the
// update a no-op when the row was already approved by a concurrent request;
// the returned bool reports whether this call won the flip.
func (r *Repository) Approve(ctx context.Context, id int, approvedAt time.Time) (bool, error) {
	query := `
        UPDATE submissions
        SET status = $1, approved_at = $2
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusApproved, approvedAt, id, domain.StatusPending)
	if err != nil {
		zap.L().Error("can't approve submission", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SumTemplateValueByStatus totals the current template value over the user's
// submissions with the given status. Earnings are always derived from this,
// never cached.
func (r *Repository) SumTemplateValueByStatus(ctx context.Context, userID int, status string) (float64, error) {
	query := `
        SELECT COALESCE(SUM(ct.value), 0)
        FROM submissions s
        JOIN chore_templates ct ON ct.id = s.chore_template_id
        WHERE s.user_id = $1 AND s.status = $2
    `
	var total float64
	err := r.db.QueryRow(ctx, query, userID, status).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum template values", zap.Error(err))
		return 0, err
	}
	return total, nil
}
