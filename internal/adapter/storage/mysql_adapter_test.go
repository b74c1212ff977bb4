package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/storefront/internal/core/domain"
)

func getMySQL(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/storefront?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	ctx := context.Background()
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255), brand VARCHAR(64), processor VARCHAR(128),
			ram VARCHAR(32), storage VARCHAR(64), graphics VARCHAR(128),
			display VARCHAR(128), price DOUBLE, original_price DOUBLE,
			image TEXT, images JSON, rating DOUBLE, reviews INT,
			description TEXT, features JSON
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(64) PRIMARY KEY,
			user_id VARCHAR(64), user_name VARCHAR(255), user_email VARCHAR(255),
			total DOUBLE, status VARCHAR(16), order_date DATETIME,
			shipping_address TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id VARCHAR(64), product_id VARCHAR(64),
			quantity INT, unit_price DOUBLE,
			PRIMARY KEY (order_id, product_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Skipf("cannot prepare schema: %v", err)
		}
	}
	return db
}

func TestUpsertProduct(t *testing.T) {
	db := getMySQL(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM products WHERE id = 'test-1'`)

	p := domain.Product{
		ID: "test-1", Name: "MacBook Pro", Brand: "Apple", Processor: "Apple M3",
		Memory: "32GB", Price: 3499,
		Images:   []string{"a.jpg"},
		Features: []string{"M3 chip"},
	}
	if err := adapter.UpsertProduct(ctx, p); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Second upsert replaces rather than duplicating.
	p.Price = 2999
	if err := adapter.UpsertProduct(ctx, p); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var price float64
	err := db.QueryRowContext(ctx, `SELECT price FROM products WHERE id = 'test-1'`).Scan(&price)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if price != 2999 {
		t.Errorf("expected price 2999, got %v", price)
	}

	db.ExecContext(ctx, `DELETE FROM products WHERE id = 'test-1'`)
}

func TestDeleteProduct(t *testing.T) {
	db := getMySQL(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	adapter.UpsertProduct(ctx, domain.Product{ID: "test-del", Name: "Doomed"})
	if err := adapter.DeleteProduct(ctx, "test-del"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE id = 'test-del'`).Scan(&count)
	if count != 0 {
		t.Errorf("expected 0 rows, got %d", count)
	}

	// Absent rows are not an error.
	if err := adapter.DeleteProduct(ctx, "test-del"); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}

func TestSaveOrder(t *testing.T) {
	db := getMySQL(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = 'ORD-TEST'`)
	db.ExecContext(ctx, `DELETE FROM orders WHERE id = 'ORD-TEST'`)

	order := domain.Order{
		ID: "ORD-TEST", UserID: "u1", UserName: "John Smith", UserEmail: "john@example.com",
		Items: []domain.CartLine{
			{Product: domain.Product{ID: "p1", Price: 100}, Quantity: 2},
			{Product: domain.Product{ID: "p2", Price: 50}, Quantity: 1},
		},
		Total: 250, Status: domain.OrderStatusPending,
		OrderDate: time.Now(), ShippingAddress: "123 Main St",
	}
	if err := adapter.SaveOrder(ctx, order); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Saving again with a new status updates in place.
	order.Status = domain.OrderStatusShipped
	if err := adapter.SaveOrder(ctx, order); err != nil {
		t.Fatalf("status update failed: %v", err)
	}

	var status string
	if err := db.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = 'ORD-TEST'`).Scan(&status); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if status != "shipped" {
		t.Errorf("expected shipped, got %s", status)
	}

	var items int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM order_items WHERE order_id = 'ORD-TEST'`).Scan(&items)
	if items != 2 {
		t.Errorf("expected 2 items, got %d", items)
	}

	db.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = 'ORD-TEST'`)
	db.ExecContext(ctx, `DELETE FROM orders WHERE id = 'ORD-TEST'`)
}
