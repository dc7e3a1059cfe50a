package repos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iam-david1/shophub/internal/domain"
	"github.com/iam-david1/shophub/internal/repos"
)

func TestCheckoutDrainsCartAndFreezesPrices(t *testing.T) {
	db := testdb(t)
	carts := repos.NewCartRepo(db)
	orders := repos.NewOrderRepo(db)

	db.MustExec(`INSERT INTO products(id,name,price,image,stock) VALUES
	  (100,'Widget',10.00,'https://example.com/w.jpg',5),
	  (101,'Gadget',5.00,'https://example.com/g.jpg',5)`)

	cartID, err := carts.EnsureCart("sess-checkout")
	require.NoError(t, err)
	_, _, err = carts.UpsertItem(cartID, 100, 2)
	require.NoError(t, err)
	_, _, err = carts.UpsertItem(cartID, 101, 1)
	require.NoError(t, err)

	orderID, total, err := orders.CheckoutBySession("sess-checkout")
	require.NoError(t, err)
	require.InDelta(t, 25.00, total, 0.001)

	order, items, err := orders.Get(orderID)
	require.NoError(t, err)
	require.Equal(t, "completed", order.Status)
	require.InDelta(t, 25.00, order.Total, 0.001)
	require.Len(t, items, 2)
	require.InDelta(t, 10.00, items[0].Price, 0.001)
	require.InDelta(t, 5.00, items[1].Price, 0.001)

	// Cart is emptied but the cart row survives for reuse.
	lines, err := carts.Lines("sess-checkout")
	require.NoError(t, err)
	require.Empty(t, lines)
	again, err := carts.EnsureCart("sess-checkout")
	require.NoError(t, err)
	require.Equal(t, cartID, again)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	db := testdb(t)
	carts := repos.NewCartRepo(db)
	orders := repos.NewOrderRepo(db)

	_, err := carts.EnsureCart("sess-empty")
	require.NoError(t, err)

	_, _, err = orders.CheckoutBySession("sess-empty")
	require.ErrorIs(t, err, domain.ErrEmptyCart)

	// No order row may exist after a rejected checkout.
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM orders WHERE session_id = 'sess-empty'`))
	require.Equal(t, 0, n)
}

func TestOrderPriceFrozenAfterCatalogChange(t *testing.T) {
	db := testdb(t)
	carts := repos.NewCartRepo(db)
	orders := repos.NewOrderRepo(db)

	db.MustExec(`INSERT INTO products(id,name,price,image,stock) VALUES
	  (200,'Doodad',20.00,'https://example.com/d.jpg',5)`)

	cartID, err := carts.EnsureCart("sess-freeze")
	require.NoError(t, err)
	_, _, err = carts.UpsertItem(cartID, 200, 1)
	require.NoError(t, err)

	orderID, total, err := orders.CheckoutBySession("sess-freeze")
	require.NoError(t, err)
	require.InDelta(t, 20.00, total, 0.001)

	db.MustExec(`UPDATE products SET price = 99.00 WHERE id = 200`)

	order, items, err := orders.Get(orderID)
	require.NoError(t, err)
	require.InDelta(t, 20.00, order.Total, 0.001)
	require.Len(t, items, 1)
	require.InDelta(t, 20.00, items[0].Price, 0.001)
}

func TestGetUnknownOrder(t *testing.T) {
	db := testdb(t)
	orders := repos.NewOrderRepo(db)

	_, _, err := orders.Get(424242)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
