package chorerepo

import (
	"context"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const choreColumns = `id, name, description, value,
		sunday_limit, monday_limit, tuesday_limit, wednesday_limit,
		thursday_limit, friday_limit, saturday_limit,
		active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanChore(row pgx.Row) (*domain.ChoreTemplate, error) {
	var tpl domain.ChoreTemplate
	err := row.Scan(
		&tpl.ID, &tpl.Name, &tpl.Description, &tpl.Value,
		&tpl.Limits[0], &tpl.Limits[1], &tpl.Limits[2], &tpl.Limits[3],
		&tpl.Limits[4], &tpl.Limits[5], &tpl.Limits[6],
		&tpl.Active, &tpl.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ChoreTemplate, error) {
	query := `
        SELECT ` + choreColumns + `
        FROM chore_templates
        WHERE id = $1
    `
	tpl, err := scanChore(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find chore template", zap.Error(err))
		return nil, err
	}
	return tpl, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.ChoreTemplate, error) {
	query := `
        SELECT ` + choreColumns + `
        FROM chore_templates
        ORDER BY name
    `
	return r.findMany(ctx, query)
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.ChoreTemplate, error) {
	query := `
        SELECT ` + choreColumns + `
        FROM chore_templates
        WHERE active = TRUE
        ORDER BY name
    `
	return r.findMany(ctx, query)
}

func (r *Repository) findMany(ctx context.Context, query string) ([]domain.ChoreTemplate, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get chore templates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var templates []domain.ChoreTemplate
	for rows.Next() {
		tpl, err := scanChore(rows)
		if err != nil {
			zap.L().Error("can't scan chore template row", zap.Error(err))
			return nil, err
		}
		templates = append(templates, *tpl)
	}
	return templates, nil
}

func (r *Repository) Save(ctx context.Context, tpl *domain.ChoreTemplate) error {
	query := `
        INSERT INTO chore_templates (name, description, value,
			sunday_limit, monday_limit, tuesday_limit, wednesday_limit,
			thursday_limit, friday_limit, saturday_limit,
			active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		tpl.Name, tpl.Description, tpl.Value,
		tpl.Limits[0], tpl.Limits[1], tpl.Limits[2], tpl.Limits[3],
		tpl.Limits[4], tpl.Limits[5], tpl.Limits[6],
		tpl.Active, tpl.CreatedAt,
	).Scan(&tpl.ID)
	if err != nil {
		zap.L().Error("can't save chore template", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, tpl *domain.ChoreTemplate) error {
	query := `
        UPDATE chore_templates
        SET name = $1, description = $2, value = $3,
			sunday_limit = $4, monday_limit = $5, tuesday_limit = $6,
			wednesday_limit = $7, thursday_limit = $8, friday_limit = $9,
			saturday_limit = $10
        WHERE id = $11
    `
	_, err := r.db.Exec(ctx, query,
		tpl.Name, tpl.Description, tpl.Value,
		tpl.Limits[0], tpl.Limits[1], tpl.Limits[2], tpl.Limits[3],
		tpl.Limits[4], tpl.Limits[5], tpl.Limits[6],
		tpl.ID,
	)
	if err != nil {
		zap.L().Error("can't update chore template", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, id int, active bool) error {
	query := `
        UPDATE chore_templates
        SET active = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, active, id)
	if err != nil {
		zap.L().Error("can't toggle chore template", zap.Error(err))
		return err
	}
	return nil
}
