package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SetProductImage stores the photo for a backend product, replacing any
// previous one.
func SetProductImage(ctx context.Context, db *sql.DB, productID string, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO product_images (product_id, image, image_mime) VALUES (?, ?, ?)
		 ON CONFLICT(product_id) DO UPDATE SET
		     image = excluded.image,
		     image_mime = excluded.image_mime,
		     updated_at = CURRENT_TIMESTAMP`,
		productID, image, mime,
	)
	if err != nil {
		return fmt.Errorf("setting product image: %w", err)
	}
	return nil
}

// GetProductImage returns a product's photo and MIME type. Both are empty if
// the product has no photo.
func GetProductImage(ctx context.Context, db *sql.DB, productID string) ([]byte, string, error) {
	var image []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM product_images WHERE product_id = ?`, productID,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product image: %w", err)
	}
	return image, mime, nil
}

// HasProductImages returns the set of product IDs that have a stored photo.
func HasProductImages(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT product_id FROM product_images`)
	if err != nil {
		return nil, fmt.Errorf("listing product images: %w", err)
	}
	defer rows.Close()

	has := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning product image: %w", err)
		}
		has[id] = true
	}
	return has, rows.Err()
}

// DeleteProductImage removes a product's photo.
func DeleteProductImage(ctx context.Context, db *sql.DB, productID string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = ?`, productID)
	if err != nil {
		return fmt.Errorf("deleting product image: %w", err)
	}
	return nil
}
