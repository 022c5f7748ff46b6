package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"productparser/internal/model"
)

// ProductRepository stores products in Postgres. Characteristics and photos
// are removed together with their product by ON DELETE CASCADE.
type ProductRepository struct {
	DB *sql.DB
}

// CreateProduct stores p and returns its id. A product already stored under
// the same source URL is updated in place, its children are cleared for
// reattachment and it is queued for indexing again.
func (r *ProductRepository) CreateProduct(ctx context.Context, p model.ProductRecord) (model.ProductID, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products
		(id, source_url, full_name, color, memory, manufacturer, screen_diagonal, screen_resolution,
		 price_regular, price_discount, product_code, reviews_count, sync_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'S')
		ON CONFLICT (source_url) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			color = EXCLUDED.color,
			memory = EXCLUDED.memory,
			manufacturer = EXCLUDED.manufacturer,
			screen_diagonal = EXCLUDED.screen_diagonal,
			screen_resolution = EXCLUDED.screen_resolution,
			price_regular = EXCLUDED.price_regular,
			price_discount = EXCLUDED.price_discount,
			product_code = EXCLUDED.product_code,
			reviews_count = EXCLUDED.reviews_count,
			sync_status = 'S'
		RETURNING id
	`, uuid.New(), p.SourceURL, p.FullName, p.Color, p.Memory, p.Manufacturer, p.ScreenDiagonal, p.ScreenResolution,
		p.PriceRegular, p.PriceDiscount, p.ProductCode, p.ReviewCount).Scan(&id)
	if err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_characteristics WHERE product_id = $1`, id); err != nil {
		return "", fmt.Errorf("failed to clear characteristics of %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_photos WHERE product_id = $1`, id); err != nil {
		return "", fmt.Errorf("failed to clear photos of %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return model.ProductID(id), nil
}

func (r *ProductRepository) AttachCharacteristic(ctx context.Context, id model.ProductID, c model.CharacteristicEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO product_characteristics (id, product_id, name, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, name) DO UPDATE SET value = EXCLUDED.value
	`, uuid.New(), string(id), c.Name, c.Value)
	return err
}

func (r *ProductRepository) AttachPhoto(ctx context.Context, id model.ProductID, p model.PhotoEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO product_photos (id, product_id, url)
		VALUES ($1, $2, $3)
	`, uuid.New(), string(id), p.URL)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id model.ProductID) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, string(id))
	return err
}

// ListPending returns products not yet indexed for semantic search.
func (r *ProductRepository) ListPending(ctx context.Context) ([]model.StoredProduct, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, source_url, full_name, color, memory, manufacturer, screen_diagonal, screen_resolution,
		       price_regular, price_discount, product_code, reviews_count
		FROM products
		WHERE sync_status = 'S'
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.StoredProduct
	for rows.Next() {
		var (
			sp       model.StoredProduct
			id       string
			regular  decimal.NullDecimal
			discount decimal.NullDecimal
		)
		p := &sp.Record
		if err := rows.Scan(&id, &p.SourceURL, &p.FullName, &p.Color, &p.Memory, &p.Manufacturer,
			&p.ScreenDiagonal, &p.ScreenResolution, &regular, &discount, &p.ProductCode, &p.ReviewCount); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		sp.ID = model.ProductID(id)
		p.PriceRegular = decimalPtr(regular)
		p.PriceDiscount = decimalPtr(discount)
		list = append(list, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Characteristics, err = r.characteristics(ctx, list[i].ID); err != nil {
			return nil, err
		}
		if list[i].Photos, err = r.photos(ctx, list[i].ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *ProductRepository) MarkAsIndexed(ctx context.Context, id model.ProductID) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE products
		SET sync_status = 'N'
		WHERE id = $1
	`, string(id))
	return err
}

func (r *ProductRepository) characteristics(ctx context.Context, id model.ProductID) ([]model.CharacteristicEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, value FROM product_characteristics WHERE product_id = $1
	`, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.CharacteristicEntry
	for rows.Next() {
		var c model.CharacteristicEntry
		if err := rows.Scan(&c.Name, &c.Value); err != nil {
			return nil, fmt.Errorf("failed to scan characteristic: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ProductRepository) photos(ctx context.Context, id model.ProductID) ([]model.PhotoEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT url FROM product_photos WHERE product_id = $1 ORDER BY position
	`, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.PhotoEntry
	for rows.Next() {
		var p model.PhotoEntry
		if err := rows.Scan(&p.URL); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}
