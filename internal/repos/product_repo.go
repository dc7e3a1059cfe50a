package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iam-david1/shophub/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
		SELECT id, name, price, image, description, stock,
		       created_at, COALESCE(updated_at,'') AS updated_at
		FROM products
		ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
		SELECT id, name, price, image, description, stock,
		       created_at, COALESCE(updated_at,'') AS updated_at
		FROM products
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

// Exists backs the add-to-cart boundary check so dangling product references
// never reach cart_items.
func (r *ProductRepo) Exists(id int64) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}
