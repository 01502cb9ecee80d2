package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vetrovegor/catalog-backend/internal/brand"
	"github.com/vetrovegor/catalog-backend/internal/logging"
	pgtx "github.com/vetrovegor/catalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

// SQLSTATE 23503, products.brand_id references brands with ON DELETE RESTRICT.
const foreignKeyViolationCode = "23503"

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) executor(ctx context.Context) pgtx.DBExecutor {
	return pgtx.GetExecutor(ctx, r.client)
}

func (r *repository) GetAll(ctx context.Context) ([]brand.Brand, error) {
	query := `SELECT id, brand FROM brands ORDER BY id ASC`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.executor(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]brand.Brand, 0)
	for rows.Next() {
		var b brand.Brand

		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return brands, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*brand.Brand, error) {
	query := `SELECT id, brand FROM brands WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	var b brand.Brand

	if err := r.executor(ctx).QueryRow(ctx, query, id).Scan(&b.ID, &b.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}

		return nil, err
	}

	return &b, nil
}

func (r *repository) Create(ctx context.Context, name string) (*brand.Brand, error) {
	query := `INSERT INTO brands (brand) VALUES ($1) RETURNING id`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := r.executor(ctx).QueryRow(ctx, query, name).Scan(&id); err != nil {
		return nil, err
	}

	return &brand.Brand{ID: id, Name: name}, nil
}

func (r *repository) Update(ctx context.Context, id int, name string) error {
	query := `UPDATE brands SET brand=$2 WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.executor(ctx).Exec(ctx, query, id, name)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM brands WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.executor(ctx).Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return ErrBrandHasProducts
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}
