package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartLine is a cart item joined with its product for display.
type CartLine struct {
	CartItemID  int64   `db:"cart_item_id" json:"cart_item_id"`
	Quantity    int     `db:"quantity" json:"quantity"`
	ProductID   int64   `db:"product_id" json:"product_id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Image       string  `db:"image" json:"image"`
	Description *string `db:"description" json:"description"`
	Stock       int     `db:"stock" json:"stock"`
}

// EnsureCart resolves the cart bound to a session token, creating it if
// absent. The conflict clause makes repeated calls idempotent: the same
// session never gets a second cart, only a fresher updated_at.
func (r *CartRepo) EnsureCart(sessionID string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	var id int64
	err := r.db.Get(&id, `
		INSERT INTO carts(session_id, created_at, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET updated_at = excluded.updated_at
		RETURNING id
	`, sessionID, now, now)
	return id, err
}

// Lines returns the joined view for a session. A session with no cart yet
// yields an empty slice, not an error.
func (r *CartRepo) Lines(sessionID string) ([]CartLine, error) {
	lines := []CartLine{}
	err := r.db.Select(&lines, `
		SELECT ci.id AS cart_item_id, ci.quantity,
		       p.id AS product_id, p.name, p.price, p.image, p.description, p.stock
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.id
		JOIN products p ON p.id = ci.product_id
		WHERE c.session_id = ?
		ORDER BY ci.id
	`, sessionID)
	return lines, err
}

// UpsertItem adds quantity to the (cart, product) line, inserting it first if
// needed. The merge is a single statement so the increment stays atomic under
// SQLite's serialized writers; the preliminary SELECT only decides the
// created-vs-merged result and never feeds the new quantity.
func (r *CartRepo) UpsertItem(cartID, productID int64, qty int) (int64, bool, error) {
	created := false
	var existing int64
	if err := r.db.Get(&existing, `
		SELECT id FROM cart_items WHERE cart_id = ? AND product_id = ?
	`, cartID, productID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, false, err
		}
		created = true
	}

	var id int64
	if err := r.db.Get(&id, `
		INSERT INTO cart_items(cart_id, product_id, quantity)
		VALUES(?, ?, ?)
		ON CONFLICT(cart_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + excluded.quantity
		RETURNING id
	`, cartID, productID, qty); err != nil {
		return 0, false, err
	}
	r.touch(cartID)
	return id, created, nil
}

// SetQuantity overwrites a line's quantity. The cart_id predicate scopes the
// write to the caller's own cart; a foreign item id is a no-op.
func (r *CartRepo) SetQuantity(cartID, itemID int64, qty int) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE cart_items SET quantity = ? WHERE id = ? AND cart_id = ?
	`, qty, itemID, cartID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		r.touch(cartID)
	}
	return n > 0, nil
}

// DeleteItem removes a line. Deleting an absent or foreign item succeeds with
// no effect so client retries stay simple.
func (r *CartRepo) DeleteItem(cartID, itemID int64) error {
	res, err := r.db.Exec(`
		DELETE FROM cart_items WHERE id = ? AND cart_id = ?
	`, itemID, cartID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		r.touch(cartID)
	}
	return nil
}

func (r *CartRepo) touch(cartID int64) {
	_, _ = r.db.Exec(`UPDATE carts SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, cartID)
}
