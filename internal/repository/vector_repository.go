package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"productparser/internal/model"
)

// VectorRepository stores embedded product text chunks (pgvector).
type VectorRepository struct {
	DB *pgxpool.Pool
}

func (r *VectorRepository) Save(ctx context.Context, productID model.ProductID, sourceURL, content string, embedding []float32) error {
	// Remove invalid byte sequences to avoid "invalid byte sequence for encoding UTF8"
	validContent := strings.ToValidUTF8(content, "")

	_, err := r.DB.Exec(ctx, `
		INSERT INTO product_knowledge
		(id, product_id, source_url, content, embedding)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), string(productID), sourceURL, validContent, vectorLiteral(embedding))
	return err
}

// DeleteByProduct drops previously stored chunks so a product can be re-indexed.
func (r *VectorRepository) DeleteByProduct(ctx context.Context, productID model.ProductID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM product_knowledge WHERE product_id = $1`, string(productID))
	return err
}

// vectorLiteral renders an embedding as "[v1,v2,...]" (pgvector text format).
func vectorLiteral(embedding []float32) string {
	parts := make([]string, len(embedding))
	for i, v := range embedding {
		parts[i] = strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
