package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/shop-order-service/internal/domain"
)

// PostgresStore mirrors accounts and inventories into Postgres.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

// EnsureSchema creates the mirror tables if absent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS accounts (
  username text PRIMARY KEY,
  password text NOT NULL,
  role text NOT NULL,
  shop_name text NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS inventories (
  shop_name text NOT NULL,
  product text NOT NULL,
  description text NOT NULL,
  quantity bigint NOT NULL,
  price_centavos bigint NOT NULL,
  PRIMARY KEY (shop_name, product, description)
);`)
	return err
}

func (s *PostgresStore) SaveAccount(ctx context.Context, a domain.Account) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO accounts(username, password, role, shop_name)
        VALUES($1, $2, $3, $4)
        ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password,
            role = EXCLUDED.role, shop_name = EXCLUDED.shop_name`,
		a.Username, a.Password, string(a.Role), a.Shop)
	return err
}

func (s *PostgresStore) SaveStock(ctx context.Context, shop string, key domain.ProductKey, qty int, price domain.Centavos) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO inventories(shop_name, product, description, quantity, price_centavos)
        VALUES($1, $2, $3, $4, $5)
        ON CONFLICT (shop_name, product, description) DO UPDATE SET
            quantity = EXCLUDED.quantity, price_centavos = EXCLUDED.price_centavos`,
		shop, key.Name, key.Description, qty, int64(price))
	return err
}

func (s *PostgresStore) DeleteStock(ctx context.Context, shop string, key domain.ProductKey) error {
	_, err := s.Pool.Exec(ctx, `DELETE FROM inventories
        WHERE shop_name = $1 AND product = $2 AND description = $3`,
		shop, key.Name, key.Description)
	return err
}

func (s *PostgresStore) LoadAccounts(ctx context.Context, fn func(a domain.Account) error) error {
	rows, err := s.Pool.Query(ctx, `SELECT username, password, role, shop_name FROM accounts`)
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

func (s *PostgresStore) LoadStock(ctx context.Context, fn func(shop string, key domain.ProductKey, qty int, price domain.Centavos) error) error {
	rows, err := s.Pool.Query(ctx, `SELECT shop_name, product, description, quantity, price_centavos FROM inventories`)
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

var _ domain.StateStore = (*PostgresStore)(nil)
