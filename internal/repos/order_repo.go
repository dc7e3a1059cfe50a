package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/iam-david1/shophub/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderItemRow is an order line joined with the live product for display.
// Price is the frozen copy taken at checkout, not the product's current one.
type OrderItemRow struct {
	ID        int64   `db:"id" json:"id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
	CreatedAt string  `db:"created_at" json:"created_at"`
	Name      string  `db:"name" json:"name"`
	Image     string  `db:"image" json:"image"`
}

type checkoutLine struct {
	ProductID int64   `db:"product_id"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}

// CheckoutBySession drains the session's cart into an immutable order. The
// whole read-total-insert-delete sequence runs in one transaction: if any
// step fails nothing is visible, so a half-drained cart or a total that
// disagrees with the recorded items cannot occur.
func (r *OrderRepo) CheckoutBySession(sessionID string) (int64, float64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var lines []checkoutLine
	if err := tx.Select(&lines, `
		SELECT p.id AS product_id, ci.quantity, p.price
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.id
		JOIN products p ON p.id = ci.product_id
		WHERE c.session_id = ?
		ORDER BY ci.id
	`, sessionID); err != nil {
		return 0, 0, err
	}
	if len(lines) == 0 {
		return 0, 0, domain.ErrEmptyCart
	}

	// Sum price*qty in decimal so repeated float adds can't drift the total.
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	amount := total.Round(2).InexactFloat64()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.Exec(`
		INSERT INTO orders(session_id, total, status, created_at)
		VALUES(?, ?, 'completed', ?)
	`, sessionID, amount, now)
	if err != nil {
		return 0, 0, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, 0, err
	}

	for _, l := range lines {
		if _, err := tx.Exec(`
			INSERT INTO order_items(order_id, product_id, quantity, price, created_at)
			VALUES(?, ?, ?, ?, ?)
		`, orderID, l.ProductID, l.Quantity, l.Price, now); err != nil {
			return 0, 0, err
		}
	}

	// Empty the cart but keep the cart row; the session can shop again.
	if _, err := tx.Exec(`
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM carts WHERE session_id = ?)
	`, sessionID); err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return orderID, amount, nil
}

func (r *OrderRepo) Get(orderID int64) (domain.Order, []OrderItemRow, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
		SELECT id, session_id, total, status, created_at FROM orders WHERE id = ?
	`, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, nil, domain.ErrNotFound
		}
		return domain.Order{}, nil, err
	}

	items := []OrderItemRow{}
	if err := r.db.Select(&items, `
		SELECT oi.id, oi.product_id, oi.quantity, oi.price, oi.created_at, p.name, p.image
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}

	return o, items, nil
}
