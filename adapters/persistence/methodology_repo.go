package persistence

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/methodology"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type postgresMethodologyRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresMethodologyRepo(db *pgxpool.Pool, logger logger.Logger) methodology.Repository {
	return &postgresMethodologyRepo{db: db, logger: logger}
}

var psqlMethodology = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresMethodologyRepo) Save(ctx context.Context, item *methodology.Item) error {
	itemsBytes, err := json.Marshal(item.Items)
	if err != nil {
		return apperror.NewInternal("failed to marshal methodology bullets", err)
	}

	query := `
		INSERT INTO methodology_items (id, number, title, items, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Exec(ctx, query,
		item.ID, item.Number, item.Title, itemsBytes, item.DisplayOrder, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save methodology item", err)
	}
	return nil
}

func (r *postgresMethodologyRepo) Update(ctx context.Context, item *methodology.Item) error {
	itemsBytes, err := json.Marshal(item.Items)
	if err != nil {
		return apperror.NewInternal("failed to marshal methodology bullets", err)
	}

	query := `
		UPDATE methodology_items SET
			number = $2, title = $3, items = $4, display_order = $5, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, item.ID, item.Number, item.Title, itemsBytes, item.DisplayOrder)
	if err != nil {
		return apperror.NewInternal("failed to update methodology item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("methodology item", item.ID.String())
	}
	return nil
}

func (r *postgresMethodologyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM methodology_items WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete methodology item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("methodology item", id.String())
	}
	return nil
}

func (r *postgresMethodologyRepo) List(ctx context.Context) ([]*methodology.Item, error) {
	builder := psqlMethodology.Select("id, number, title, items, display_order, created_at, updated_at").
		From("methodology_items").
		OrderBy("display_order ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list methodology query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query methodology items", err)
	}
	defer rows.Close()

	items := make([]*methodology.Item, 0)
	for rows.Next() {
		item := &methodology.Item{}
		var itemsBytes []byte
		if err := rows.Scan(&item.ID, &item.Number, &item.Title, &itemsBytes,
			&item.DisplayOrder, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan methodology row", err)
		}
		if err := json.Unmarshal(itemsBytes, &item.Items); err != nil {
			r.logger.Warn("Failed to unmarshal methodology bullets", zap.String("item_id", item.ID.String()), zap.Error(err))
			item.Items = []string{}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating methodology rows", err)
	}
	return items, nil
}
