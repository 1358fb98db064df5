package service

import (
	"context"
	"fmt"
	"log"

	"pastelaria/domain"
)

// AddItemRequest either names a menu item or carries the full line snapshot.
type AddItemRequest struct {
	MenuItemID  int64   `json:"menu_item_id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

type CartService struct {
	sessions SessionStore
	menu     MenuReader
}

func NewCartService(sessions SessionStore, menu MenuReader) *CartService {
	return &CartService{sessions: sessions, menu: menu}
}

// Get falls back to an empty cart when the stored one cannot be read.
func (s *CartService) Get(ctx context.Context, session string) (domain.Cart, error) {
	cart, err := s.sessions.LoadCart(ctx, session)
	if err != nil {
		log.Printf("[storefront-svc] WARNING: cart %s unreadable, starting empty: %v", session, err)
		return domain.Cart{Lines: []domain.CartLine{}}, nil
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, session string, cart domain.Cart) (domain.Cart, error) {
	if err := s.sessions.SaveCart(ctx, session, cart); err != nil {
		return cart, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, session string, req AddItemRequest) (domain.Cart, error) {
	if req.MenuItemID != 0 {
		item, err := s.menu.Get(ctx, req.MenuItemID)
		if err != nil {
			return domain.Cart{}, err
		}
		req.Name = item.Name
		req.Price = item.Price
		req.Description = item.Description
	}

	cart, _ := s.Get(ctx, session)
	if err := cart.Add(req.Name, req.Price, req.Description, req.Quantity); err != nil {
		return cart, err
	}
	return s.save(ctx, session, cart)
}

func (s *CartService) ChangeQuantity(ctx context.Context, session, name string, delta int) (domain.Cart, error) {
	cart, _ := s.Get(ctx, session)
	cart.ChangeQuantity(name, delta)
	return s.save(ctx, session, cart)
}

func (s *CartService) RemoveLine(ctx context.Context, session, name string) (domain.Cart, error) {
	cart, _ := s.Get(ctx, session)
	cart.Remove(name)
	return s.save(ctx, session, cart)
}

func (s *CartService) Clear(ctx context.Context, session string) error {
	cart := domain.Cart{}
	cart.Clear()
	_, err := s.save(ctx, session, cart)
	return err
}
