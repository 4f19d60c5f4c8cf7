package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = `id, slug, category, number, title, description, long_description,
	stat_label_1, stat_value_1, stat_label_2, stat_value_2,
	bg_color, display_order, thumbnail_url, images, created_at, updated_at`

func scanProject(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var imagesBytes []byte

	err := row.Scan(
		&p.ID, &p.Slug, &p.Category, &p.Number, &p.Title, &p.Description, &p.LongDescription,
		&p.StatLabel1, &p.StatValue1, &p.StatLabel2, &p.StatValue2,
		&p.BgColor, &p.DisplayOrder, &p.ThumbnailURL, &imagesBytes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	if err := json.Unmarshal(imagesBytes, &p.Images); err != nil {
		l.Warn("Failed to unmarshal project images", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Images = []string{}
	}

	return p, nil
}

func scanProjects(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	imagesBytes, err := json.Marshal(p.Images)
	if err != nil {
		return apperror.NewInternal("failed to marshal project images", err)
	}

	query := `
		INSERT INTO projects (id, slug, category, number, title, description, long_description,
			stat_label_1, stat_value_1, stat_label_2, stat_value_2,
			bg_color, display_order, thumbnail_url, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Slug, p.Category, p.Number, p.Title, p.Description, p.LongDescription,
		p.StatLabel1, p.StatValue1, p.StatLabel2, p.StatValue2,
		p.BgColor, p.DisplayOrder, p.ThumbnailURL, imagesBytes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("project", "slug", p.Slug)
		}
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	imagesBytes, err := json.Marshal(p.Images)
	if err != nil {
		return apperror.NewInternal("failed to marshal project images for update", err)
	}

	query := `
		UPDATE projects SET
			slug = $2, category = $3, number = $4, title = $5, description = $6,
			long_description = $7, stat_label_1 = $8, stat_value_1 = $9,
			stat_label_2 = $10, stat_value_2 = $11, bg_color = $12,
			display_order = $13, thumbnail_url = $14, images = $15, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Slug, p.Category, p.Number, p.Title, p.Description,
		p.LongDescription, p.StatLabel1, p.StatValue1,
		p.StatLabel2, p.StatValue2, p.BgColor,
		p.DisplayOrder, p.ThumbnailURL, imagesBytes,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("project", "slug", p.Slug)
		}
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, query, id), r.logger)
}

func (r *postgresProjectRepo) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, slug), r.logger)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", slug)
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("display_order ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjects(rows, r.logger)
}

func (r *postgresProjectRepo) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM projects ORDER BY slug`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query project slugs", err)
	}
	defer rows.Close()

	slugs := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, apperror.NewInternal("failed to scan project slug", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project slugs", err)
	}
	return slugs, nil
}
