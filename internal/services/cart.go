package services

import (
	"dukastore/internal/domain"
	"dukastore/internal/repos"
)

// PriceLookup resolves a product id to its current price. Ids that no
// longer resolve are skipped during total computation.
type PriceLookup interface {
	PriceOf(id int64) (float64, bool)
}

// CartService owns the active session's cart lines, unique by product id,
// in insertion order.
type CartService struct {
	records *repos.RecordRepo
	lines   []domain.CartLine
}

func NewCartService(records *repos.RecordRepo) (*CartService, error) {
	s := &CartService{records: records, lines: []domain.CartLine{}}
	if err := loadRecord(records, repos.RecCart, &s.lines); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CartService) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartService) Count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

func (s *CartService) Add(productID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}
	next := s.Lines()
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		next = append(next, domain.CartLine{ProductID: productID, Qty: qty})
	}
	return s.commit(next)
}

// ChangeQty adds delta to the line's quantity and drops the line entirely
// when it falls to zero or below. Absent ids are a no-op.
func (s *CartService) ChangeQty(productID int64, delta int) error {
	next := make([]domain.CartLine, 0, len(s.lines))
	found := false
	for _, l := range s.lines {
		if l.ProductID == productID {
			found = true
			l.Qty += delta
			if l.Qty <= 0 {
				continue
			}
		}
		next = append(next, l)
	}
	if !found {
		return nil
	}
	return s.commit(next)
}

func (s *CartService) Remove(productID int64) error {
	next := make([]domain.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		if l.ProductID != productID {
			next = append(next, l)
		}
	}
	if len(next) == len(s.lines) {
		return nil
	}
	return s.commit(next)
}

func (s *CartService) Clear() error {
	return s.commit([]domain.CartLine{})
}

// Total sums price*qty over lines whose product still exists; dangling
// lines are excluded, not erased.
func (s *CartService) Total(prices PriceLookup) float64 {
	total := 0.0
	for _, l := range s.lines {
		if price, ok := prices.PriceOf(l.ProductID); ok {
			total += price * float64(l.Qty)
		}
	}
	return total
}

func (s *CartService) commit(next []domain.CartLine) error {
	if err := persist(s.records, repos.RecCart, next); err != nil {
		return err
	}
	s.lines = next
	return nil
}
