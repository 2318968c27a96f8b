package food

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache is a SQLite-backed store of previously fetched products, keyed
// by barcode. It makes repeat scans instant and offline-capable.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the product cache at the given path.
func OpenCache(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Put stores or replaces a product.
func (c *Cache) Put(p Product) error {
	if p.Barcode == "" {
		return nil // nothing to key on
	}
	_, err := c.db.Exec(`INSERT OR REPLACE INTO products
		(barcode, name, brand, protein_100g, carb_100g, fat_100g, kcal_100g, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Barcode, p.Name, p.Brand,
		p.Per100.Protein, p.Per100.Carb, p.Per100.Fat, p.Per100.Kcal,
		p.FetchedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Get returns the cached product for a barcode, or ErrNotFound.
func (c *Cache) Get(barcode string) (Product, error) {
	var p Product
	var fetched string
	err := c.db.QueryRow(`SELECT barcode, name, brand,
		protein_100g, carb_100g, fat_100g, kcal_100g, fetched_at
		FROM products WHERE barcode = ?`, barcode).Scan(
		&p.Barcode, &p.Name, &p.Brand,
		&p.Per100.Protein, &p.Per100.Carb, &p.Per100.Fat, &p.Per100.Kcal,
		&fetched,
	)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	p.FetchedAt, _ = time.Parse(time.RFC3339, fetched)
	return p, nil
}

// Count returns the number of cached products.
func (c *Cache) Count() (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&n)
	return n, err
}
