package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rl1809/storefront/internal/core/domain"
)

// MySQLAdapter mirrors catalog changes into relational storage. It is a
// write-behind sink: callers treat every method as best-effort.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) UpsertProduct(ctx context.Context, p domain.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO products
			(id, name, brand, processor, ram, storage, graphics, display,
			 price, original_price, image, images, rating, reviews, description, features)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), brand = VALUES(brand), processor = VALUES(processor),
			ram = VALUES(ram), storage = VALUES(storage), graphics = VALUES(graphics),
			display = VALUES(display), price = VALUES(price),
			original_price = VALUES(original_price), image = VALUES(image),
			images = VALUES(images), rating = VALUES(rating), reviews = VALUES(reviews),
			description = VALUES(description), features = VALUES(features)`,
		p.ID, p.Name, p.Brand, p.Processor, p.Memory, p.Storage, p.Graphics, p.Display,
		p.Price, p.OriginalPrice, p.Image, images, p.Rating, p.Reviews, p.Description, features,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) SaveOrder(ctx context.Context, o domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
			(id, user_id, user_name, user_email, total, status, order_date, shipping_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			total = VALUES(total), status = VALUES(status)`,
		o.ID, o.UserID, o.UserName, o.UserEmail, o.Total, o.Status, o.OrderDate, o.ShippingAddress,
	)
	if err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	for _, line := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT IGNORE INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES (?, ?, ?, ?)`,
			o.ID, line.Product.ID, line.Quantity, line.Product.Price,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}
