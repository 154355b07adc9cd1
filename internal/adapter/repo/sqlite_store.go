package repo

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/example/shop-order-service/internal/domain"
)

// SQLiteStore mirrors accounts and inventories into a local SQLite file,
// matching the single-machine deployment the system started with.
type SQLiteStore struct {
	DB *sql.DB
}

// OpenSQLite opens (or creates) the database file and its schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS accounts (
  username TEXT PRIMARY KEY,
  password TEXT NOT NULL,
  role TEXT NOT NULL,
  shop_name TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS inventories (
  shop_name TEXT NOT NULL,
  product TEXT NOT NULL,
  description TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price_centavos INTEGER NOT NULL,
  PRIMARY KEY (shop_name, product, description)
);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{DB: db}, nil
}

func (s *SQLiteStore) Close() error { return s.DB.Close() }

func (s *SQLiteStore) SaveAccount(ctx context.Context, a domain.Account) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO accounts(username, password, role, shop_name)
        VALUES(?, ?, ?, ?)
        ON CONFLICT (username) DO UPDATE SET password = excluded.password,
            role = excluded.role, shop_name = excluded.shop_name`,
		a.Username, a.Password, string(a.Role), a.Shop)
	return err
}

func (s *SQLiteStore) SaveStock(ctx context.Context, shop string, key domain.ProductKey, qty int, price domain.Centavos) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO inventories(shop_name, product, description, quantity, price_centavos)
        VALUES(?, ?, ?, ?, ?)
        ON CONFLICT (shop_name, product, description) DO UPDATE SET
            quantity = excluded.quantity, price_centavos = excluded.price_centavos`,
		shop, key.Name, key.Description, qty, int64(price))
	return err
}

func (s *SQLiteStore) DeleteStock(ctx context.Context, shop string, key domain.ProductKey) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM inventories
        WHERE shop_name = ? AND product = ? AND description = ?`,
		shop, key.Name, key.Description)
	return err
}

func (s *SQLiteStore) LoadAccounts(ctx context.Context, fn func(a domain.Account) error) error {
	rows, err := s.DB.QueryContext(ctx, `SELECT username, password, role, shop_name FROM accounts`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Account
		var role string
		if err := rows.Scan(&a.Username, &a.Password, &role, &a.Shop); err != nil {
			return err
		}
		a.Role = domain.Role(role)
		if err := fn(a); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) LoadStock(ctx context.Context, fn func(shop string, key domain.ProductKey, qty int, price domain.Centavos) error) error {
	rows, err := s.DB.QueryContext(ctx, `SELECT shop_name, product, description, quantity, price_centavos FROM inventories`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var shop string
		var key domain.ProductKey
		var qty int
		var price int64
		if err := rows.Scan(&shop, &key.Name, &key.Description, &qty, &price); err != nil {
			return err
		}
		if err := fn(shop, key, qty, domain.Centavos(price)); err != nil {
			return err
		}
	}
	return rows.Err()
}

var _ domain.StateStore = (*SQLiteStore)(nil)
