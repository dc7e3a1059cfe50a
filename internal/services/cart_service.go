package services

import (
	"github.com/iam-david1/shophub/internal/domain"
	"github.com/iam-david1/shophub/internal/repos"
)

// CartService drives the cart lifecycle: resolve-or-create per session,
// merge-on-add, overwrite-or-delete on quantity updates, idempotent removal.
type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// EnsureCart binds the session token to a cart, creating one on first touch.
func (s *CartService) EnsureCart(sessionID string) error {
	_, err := s.Carts.EnsureCart(sessionID)
	return err
}

func (s *CartService) List(sessionID string) ([]repos.CartLine, error) {
	return s.Carts.Lines(sessionID)
}

// AddItem upserts a line for (cart, product). The product must exist in the
// catalog; the cart is created lazily if the session has none yet. The bool
// result distinguishes a fresh line from a quantity merge.
func (s *CartService) AddItem(sessionID string, productID int64, qty int) (int64, bool, error) {
	ok, err := s.Prods.Exists(productID)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, domain.ErrNotFound
	}
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return 0, false, err
	}
	return s.Carts.UpsertItem(cartID, productID, qty)
}

// SetQuantity overwrites a line's quantity; zero or negative degenerates to a
// delete, so a stored quantity below 1 can never exist. Returns true when the
// line was deleted.
func (s *CartService) SetQuantity(sessionID string, itemID int64, qty int) (bool, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return false, err
	}
	if qty <= 0 {
		return true, s.Carts.DeleteItem(cartID, itemID)
	}
	_, err = s.Carts.SetQuantity(cartID, itemID, qty)
	return false, err
}

func (s *CartService) RemoveItem(sessionID string, itemID int64) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.DeleteItem(cartID, itemID)
}
