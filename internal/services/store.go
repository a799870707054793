package services

import (
	"sync"

	"dukastore/internal/domain"
	"dukastore/internal/rating"
	"dukastore/internal/repos"
)

// Store coordinates the catalog, cart, session and order book. It enforces
// the cross-entity preconditions no single owner can (login before cart and
// review mutations, admin role for catalog mutations, checkout ordering)
// and returns view snapshots for rendering.
//
// The model is a single logical actor, but the store sits behind a
// concurrent HTTP server, so all operations serialize on one mutex.
type Store struct {
	mu sync.Mutex

	Catalog  *CatalogService
	Cart     *CartService
	Sessions *SessionService
	Orders   *OrderService
}

func NewStore(records *repos.RecordRepo) (*Store, error) {
	catalog, err := NewCatalogService(records)
	if err != nil {
		return nil, err
	}
	cart, err := NewCartService(records)
	if err != nil {
		return nil, err
	}
	sessions, err := NewSessionService(records)
	if err != nil {
		return nil, err
	}
	orders, err := NewOrderService(records)
	if err != nil {
		return nil, err
	}
	return &Store{Catalog: catalog, Cart: cart, Sessions: sessions, Orders: orders}, nil
}

// ---------- Session ----------

func (s *Store) Login(username, password string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Sessions.Login(username, password)
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Sessions.Logout()
}

func (s *Store) CurrentSession() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Sessions.Current()
}

// ---------- Catalog ----------

func (s *Store) AddProduct(name string, price float64) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Sessions.RequireAdmin(); err != nil {
		return domain.Product{}, err
	}
	return s.Catalog.Add(name, price)
}

func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Sessions.RequireAdmin(); err != nil {
		return err
	}
	return s.Catalog.Delete(id)
}

func (s *Store) AddReview(productID int64, text string, ratingValue int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.Sessions.RequireLogin()
	if err != nil {
		return err
	}
	return s.Catalog.AddReview(productID, sess.Username, text, ratingValue)
}

// ---------- Cart ----------

func (s *Store) AddToCart(productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Sessions.RequireLogin(); err != nil {
		return err
	}
	if _, ok := s.Catalog.Get(productID); !ok {
		return &domain.NotFoundError{ID: productID}
	}
	return s.Cart.Add(productID, qty)
}

func (s *Store) ChangeQty(productID int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Sessions.RequireLogin(); err != nil {
		return err
	}
	return s.Cart.ChangeQty(productID, delta)
}

func (s *Store) RemoveFromCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Sessions.RequireLogin(); err != nil {
		return err
	}
	return s.Cart.Remove(productID)
}

// ---------- Checkout ----------

// Checkout moves the cart into the order book under the current user, then
// clears the cart. Validation failures leave the cart untouched.
func (s *Store) Checkout() (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.Sessions.RequireLogin()
	if err != nil {
		return domain.Order{}, err
	}
	o, err := s.Orders.Checkout(sess, s.Cart.Lines())
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.Cart.Clear(); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// ---------- Views ----------

type ProductView struct {
	domain.Product
	AvgRating float64
	Stars     string
}

type CartItemView struct {
	domain.CartLine
	Name     string
	Price    float64
	Subtotal float64
}

type CartView struct {
	Items []CartItemView
	Total float64
	Count int
}

type OrderItemView struct {
	Name     string
	Qty      int
	Subtotal float64
}

type OrderView struct {
	domain.Order
	Items []OrderItemView
}

// SearchProducts returns product views matching the query; an empty query
// lists the whole catalog.
func (s *Store) SearchProducts(q string) []ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches := s.Catalog.Search(q)
	out := make([]ProductView, 0, len(matches))
	for _, p := range matches {
		avg := rating.Average(p.Reviews)
		out = append(out, ProductView{Product: p, AvgRating: avg, Stars: rating.Stars(avg)})
	}
	return out
}

// CartContents resolves the cart against the catalog. Dangling lines are
// skipped for display and total, never erased.
func (s *Store) CartContents() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := CartView{Items: []CartItemView{}, Count: s.Cart.Count(), Total: s.Cart.Total(s.Catalog)}
	for _, l := range s.Cart.Lines() {
		p, ok := s.Catalog.Get(l.ProductID)
		if !ok {
			continue
		}
		sub := p.Price * float64(l.Qty)
		view.Items = append(view.Items, CartItemView{CartLine: l, Name: p.Name, Price: p.Price, Subtotal: sub})
	}
	return view
}

// OrderHistory lists the current user's orders, items resolved against the
// catalog with dangling ids skipped. Logged out yields nil.
func (s *Store) OrderHistory() []OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.Sessions.Current()
	if sess == nil {
		return nil
	}
	orders := s.Orders.HistoryFor(sess.Username)
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := OrderView{Order: o, Items: []OrderItemView{}}
		for _, it := range o.Items {
			p, ok := s.Catalog.Get(it.ProductID)
			if !ok {
				continue
			}
			v.Items = append(v.Items, OrderItemView{Name: p.Name, Qty: it.Qty, Subtotal: p.Price * float64(it.Qty)})
		}
		out = append(out, v)
	}
	return out
}
