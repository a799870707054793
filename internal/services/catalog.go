package services

import (
	"strings"
	"time"

	"dukastore/internal/domain"
	"dukastore/internal/repos"
)

// CatalogService owns the product set and the reviews attached to each
// product. It is a pure data owner: role checks happen in the Store facade.
type CatalogService struct {
	records  *repos.RecordRepo
	products []domain.Product
	ids      idSource
}

func NewCatalogService(records *repos.RecordRepo) (*CatalogService, error) {
	s := &CatalogService{records: records, products: []domain.Product{}}
	if err := loadRecord(records, repos.RecProducts, &s.products); err != nil {
		return nil, err
	}

	// Backfill pass: older data may lack the reviews field entirely.
	changed := false
	for i := range s.products {
		s.ids.observe(s.products[i].ID)
		if s.products[i].Reviews == nil {
			s.products[i].Reviews = []domain.Review{}
			changed = true
		}
	}
	if changed {
		if err := persist(records, repos.RecProducts, s.products); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// All returns a snapshot of the catalog.
func (s *CatalogService) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) Get(id int64) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogService) PriceOf(id int64) (float64, bool) {
	p, ok := s.Get(id)
	return p.Price, ok
}

func (s *CatalogService) Add(name string, price float64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price <= 0 {
		return domain.Product{}, &domain.ValidationError{Field: "price", Reason: "must be greater than zero"}
	}

	p := domain.Product{ID: s.ids.next(), Name: name, Price: price, Reviews: []domain.Review{}}
	next := append(s.All(), p)
	if err := persist(s.records, repos.RecProducts, next); err != nil {
		return domain.Product{}, err
	}
	s.products = next
	return p, nil
}

// Delete removes the product. Cart lines and order snapshots referencing it
// are left dangling on purpose; lookups skip them. Deleting an unknown id
// is a no-op.
func (s *CatalogService) Delete(id int64) error {
	next := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(s.products) {
		return nil
	}
	if err := persist(s.records, repos.RecProducts, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

// Search filters by case-insensitive substring match on the product name.
// An empty query matches everything.
func (s *CatalogService) Search(q string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []domain.Product{}
	for _, p := range s.products {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) AddReview(productID int64, username, text string, ratingValue int) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &domain.ValidationError{Field: "review", Reason: "must not be empty"}
	}
	if ratingValue < 1 || ratingValue > 5 {
		return &domain.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	idx := -1
	for i := range s.products {
		if s.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &domain.NotFoundError{ID: productID}
	}

	next := s.All()
	rv := domain.Review{Username: username, Text: text, Rating: ratingValue, Date: time.Now().UTC()}
	next[idx].Reviews = append(append([]domain.Review{}, next[idx].Reviews...), rv)
	if err := persist(s.records, repos.RecProducts, next); err != nil {
		return err
	}
	s.products = next
	return nil
}
