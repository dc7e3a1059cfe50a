package services

import (
	"github.com/iam-david1/shophub/internal/domain"
	"github.com/iam-david1/shophub/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Checkout converts the session's cart into an order and empties the cart.
// The total is computed server-side from current catalog prices, which are
// frozen into the order items at this instant. Returns domain.ErrEmptyCart
// when there is nothing to drain.
func (s *OrderService) Checkout(sessionID string) (int64, float64, error) {
	return s.Orders.CheckoutBySession(sessionID)
}

func (s *OrderService) Get(orderID int64) (domain.Order, []repos.OrderItemRow, error) {
	return s.Orders.Get(orderID)
}
