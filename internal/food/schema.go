package food

const schemaSQL = `
CREATE TABLE IF NOT EXISTS products (
    barcode          TEXT PRIMARY KEY,
    name             TEXT NOT NULL,
    brand            TEXT,
    protein_100g     REAL NOT NULL DEFAULT 0,
    carb_100g        REAL NOT NULL DEFAULT 0,
    fat_100g         REAL NOT NULL DEFAULT 0,
    kcal_100g        REAL NOT NULL DEFAULT 0,
    fetched_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
`
