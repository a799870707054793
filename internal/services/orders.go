package services

import (
	"time"

	"dukastore/internal/domain"
	"dukastore/internal/repos"
)

// OrderService owns the append-only book of completed checkouts across all
// users.
type OrderService struct {
	records *repos.RecordRepo
	orders  []domain.Order
	ids     idSource
}

func NewOrderService(records *repos.RecordRepo) (*OrderService, error) {
	s := &OrderService{records: records, orders: []domain.Order{}}
	if err := loadRecord(records, repos.RecOrders, &s.orders); err != nil {
		return nil, err
	}
	for _, o := range s.orders {
		s.ids.observe(o.ID)
	}
	return s, nil
}

// Checkout snapshots the cart lines into a new order for the session's
// user. The caller clears the cart afterwards; on any failure here the cart
// must remain untouched.
func (s *OrderService) Checkout(sess *domain.Session, lines []domain.CartLine) (domain.Order, error) {
	if sess == nil {
		return domain.Order{}, domain.ErrAuthRequired
	}
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	items := make([]domain.CartLine, len(lines))
	copy(items, lines)
	o := domain.Order{
		ID:    s.ids.next(),
		User:  sess.Username,
		Items: items,
		Date:  time.Now().UTC(),
	}

	next := make([]domain.Order, len(s.orders), len(s.orders)+1)
	copy(next, s.orders)
	next = append(next, o)
	if err := persist(s.records, repos.RecOrders, next); err != nil {
		return domain.Order{}, err
	}
	s.orders = next
	return o, nil
}

// HistoryFor returns the user's orders in checkout order.
func (s *OrderService) HistoryFor(username string) []domain.Order {
	out := []domain.Order{}
	for _, o := range s.orders {
		if o.User == username {
			out = append(out, o)
		}
	}
	return out
}
