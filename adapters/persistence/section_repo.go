package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type postgresSectionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSectionRepo(db *pgxpool.Pool, logger logger.Logger) section.Repository {
	return &postgresSectionRepo{db: db, logger: logger}
}

var psqlSection = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const sectionColumns = `id, section_type, title, content, image_url, images,
	display_order, parent, settings, created_at, updated_at`

func scanSection(row pgx.Row, l logger.Logger) (*section.Section, error) {
	s := &section.Section{}
	var imagesBytes, settingsBytes []byte

	err := row.Scan(
		&s.ID, &s.SectionType, &s.Title, &s.Content, &s.ImageURL, &imagesBytes,
		&s.DisplayOrder, &s.Parent, &settingsBytes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("section", "")
		}
		return nil, apperror.NewInternal("failed to scan section row", err)
	}

	if err := json.Unmarshal(imagesBytes, &s.Images); err != nil {
		l.Warn("Failed to unmarshal section images", zap.String("section_id", s.ID.String()), zap.Error(err))
		s.Images = []string{}
	}
	// Settings rows written by a newer schema may carry extra keys; they are
	// dropped here, which is the read-lenient half of the settings contract.
	if err := json.Unmarshal(settingsBytes, &s.Settings); err != nil {
		l.Warn("Failed to unmarshal section settings", zap.String("section_id", s.ID.String()), zap.Error(err))
		s.Settings = section.Settings{}
	}

	return s, nil
}

func scanSections(rows pgx.Rows, l logger.Logger) ([]*section.Section, error) {
	defer rows.Close()
	sections := make([]*section.Section, 0)

	for rows.Next() {
		s, err := scanSection(rows, l)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating section rows", err)
	}
	return sections, nil
}

func marshalSectionJSON(s *section.Section) (imagesBytes, settingsBytes []byte, err error) {
	imagesBytes, err = json.Marshal(s.Images)
	if err != nil {
		return nil, nil, apperror.NewInternal("failed to marshal section images", err)
	}
	settingsBytes, err = json.Marshal(s.Settings)
	if err != nil {
		return nil, nil, apperror.NewInternal("failed to marshal section settings", err)
	}
	return imagesBytes, settingsBytes, nil
}

func (r *postgresSectionRepo) Save(ctx context.Context, s *section.Section) error {
	imagesBytes, settingsBytes, err := marshalSectionJSON(s)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO portfolio_sections (id, section_type, title, content, image_url, images,
			display_order, parent, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		s.ID, s.SectionType, s.Title, s.Content, s.ImageURL, imagesBytes,
		s.DisplayOrder, s.Parent, settingsBytes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save section", err)
	}
	return nil
}

// Update writes every editable field. section_type and created_at are
// deliberately absent: type is immutable after creation.
func (r *postgresSectionRepo) Update(ctx context.Context, s *section.Section) error {
	imagesBytes, settingsBytes, err := marshalSectionJSON(s)
	if err != nil {
		return err
	}

	query := `
		UPDATE portfolio_sections SET
			title = $2, content = $3, image_url = $4, images = $5,
			display_order = $6, parent = $7, settings = $8, updated_at = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		s.ID, s.Title, s.Content, s.ImageURL, imagesBytes,
		s.DisplayOrder, s.Parent, settingsBytes, s.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update section", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("section", s.ID.String())
	}
	return nil
}

func (r *postgresSectionRepo) UpdateOrder(ctx context.Context, id uuid.UUID, displayOrder int) error {
	query := `UPDATE portfolio_sections SET display_order = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, displayOrder)
	if err != nil {
		return apperror.NewInternal("failed to update section order", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("section", id.String())
	}
	return nil
}

func (r *postgresSectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio_sections WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete section", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("section", id.String())
	}
	return nil
}

func (r *postgresSectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*section.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM portfolio_sections WHERE id = $1`
	s, err := scanSection(r.db.QueryRow(ctx, query, id), r.logger)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("section", id.String())
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresSectionRepo) ListByParent(ctx context.Context, parent string) ([]*section.Section, error) {
	builder := psqlSection.Select(sectionColumns).
		From("portfolio_sections").
		Where(sq.Eq{"parent": parent}).
		// created_at breaks display_order ties stably
		OrderBy("display_order ASC", "created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list sections query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query sections by parent", err)
	}

	return scanSections(rows, r.logger)
}

func (r *postgresSectionRepo) ListParents(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT parent FROM portfolio_sections ORDER BY parent`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query section parents", err)
	}
	defer rows.Close()

	parents := make([]string, 0)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, apperror.NewInternal("failed to scan section parent", err)
		}
		parents = append(parents, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating section parents", err)
	}
	return parents, nil
}
