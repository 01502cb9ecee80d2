package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vetrovegor/catalog-backend/internal/logging"
	"github.com/vetrovegor/catalog-backend/internal/product"
	pgtx "github.com/vetrovegor/catalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

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

const productColumns = `
	p.id,
	p.brand_id,
	b.brand,
	p.sku_code,
	p.agsk_code,
	p.product,
	p.uom,
	p.price_ex_vat,
	p.price_inc_vat
`

func scanProduct(row pgx.Row, p *product.Product) error {
	return row.Scan(
		&p.ID,
		&p.BrandID,
		&p.BrandName,
		&p.SKUCode,
		&p.AGSKCode,
		&p.Name,
		&p.UOM,
		&p.PriceExVAT,
		&p.PriceIncVAT,
	)
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]product.Product, error) {
	logging.LogSQLQuery(r.logger, query)

	rows, err := r.executor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		var p product.Product

		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return products, nil
}

func (r *repository) GetAll(ctx context.Context) ([]product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN brands b ON p.brand_id = b.id
		ORDER BY p.id ASC
	`

	return r.queryProducts(ctx, query)
}

func (r *repository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN brands b ON p.brand_id = b.id
		WHERE p.id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var p product.Product

	if err := scanProduct(r.executor(ctx).QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return &p, nil
}

// GetByUniqueKey compares sku/agsk with IS NOT DISTINCT FROM so absent codes
// still match absent codes.
func (r *repository) GetByUniqueKey(ctx context.Context, brandID int, skuCode, agskCode *string) (*product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN brands b ON p.brand_id = b.id
		WHERE p.brand_id=$1
			AND p.sku_code IS NOT DISTINCT FROM $2
			AND p.agsk_code IS NOT DISTINCT FROM $3
		ORDER BY p.id ASC
		LIMIT 1
	`

	logging.LogSQLQuery(r.logger, query)

	var p product.Product

	if err := scanProduct(r.executor(ctx).QueryRow(ctx, query, brandID, skuCode, agskCode), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return &p, nil
}

func (r *repository) Search(ctx context.Context, q string) ([]product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN brands b ON p.brand_id = b.id
		WHERE p.sku_code ILIKE $1 OR p.agsk_code ILIKE $1 OR p.product ILIKE $1
		ORDER BY p.id ASC
	`

	return r.queryProducts(ctx, query, "%"+q+"%")
}

// GetAllKeys returns the de-duplication keys of every stored product, with
// NULL codes coalesced to empty strings.
func (r *repository) GetAllKeys(ctx context.Context) ([]product.Key, error) {
	query := `SELECT brand_id, COALESCE(sku_code, ''), COALESCE(agsk_code, '') FROM products`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.executor(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]product.Key, 0)
	for rows.Next() {
		var k product.Key

		if err := rows.Scan(&k.BrandID, &k.SKUCode, &k.AGSKCode); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return keys, nil
}

func (r *repository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products (brand_id, sku_code, agsk_code, product, uom, price_ex_vat, price_inc_vat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := r.executor(ctx).QueryRow(
		ctx,
		query,
		data.BrandID,
		data.SKUCode,
		data.AGSKCode,
		data.Name,
		data.UOM,
		data.PriceExVAT,
		data.PriceIncVAT,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data product.Product) error {
	query := `
		UPDATE products
		SET brand_id=$2, sku_code=$3, agsk_code=$4, product=$5, uom=$6, price_ex_vat=$7, price_inc_vat=$8
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.executor(ctx).Exec(
		ctx,
		query,
		data.ID,
		data.BrandID,
		data.SKUCode,
		data.AGSKCode,
		data.Name,
		data.UOM,
		data.PriceExVAT,
		data.PriceIncVAT,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.executor(ctx).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}
