package models

import "time"

// Session is the per-browser state: one cart plus the sidebar visibility flag.
type Session struct {
	ID        string    `json:"id"`
	Cart      Cart      `json:"cart"`
	CartOpen  bool      `json:"cart_open"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSession(id string, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Cart:      Cart{Items: []CartItem{}},
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// CartView is the read model handed to the page and the JSON API.
type CartView struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice string     `json:"total_price"`
	IsEmpty    bool       `json:"is_empty"`
	IsOpen     bool       `json:"is_open"`
}

func (s *Session) View() CartView {
	snap := s.Cart.Snapshot()
	return CartView{
		Items:      snap.Items,
		TotalItems: snap.TotalItems(),
		TotalPrice: snap.TotalPrice(),
		IsEmpty:    snap.IsEmpty(),
		IsOpen:     s.CartOpen,
	}
}
