package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"dukastore/internal/domain"
	"dukastore/internal/repos"
)

// Demo-grade auth: any non-empty username/password pair signs in as a
// regular user; exactly this pair yields the admin role. Not a security
// boundary.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// SessionService owns the current authenticated identity. At most one
// session is active at a time; nil means logged out.
type SessionService struct {
	records   *repos.RecordRepo
	current   *domain.Session
	adminHash []byte
}

func NewSessionService(records *repos.RecordRepo) (*SessionService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s := &SessionService{records: records, adminHash: hash}
	var sess *domain.Session
	if err := loadRecord(records, repos.RecUser, &sess); err != nil {
		return nil, err
	}
	s.current = sess
	return s, nil
}

// Login never rejects a wrong password; it only decides the role. The admin
// credential is compared against its bcrypt hash.
func (s *SessionService) Login(username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "must not be empty"}
	}

	role := domain.RoleUser
	if username == adminUsername && bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil {
		role = domain.RoleAdmin
	}

	sess := &domain.Session{Username: username, Role: role}
	if err := persist(s.records, repos.RecUser, sess); err != nil {
		return nil, err
	}
	s.current = sess
	return sess, nil
}

func (s *SessionService) Logout() error {
	if err := s.records.Delete(repos.RecUser); err != nil {
		return &domain.PersistenceError{Record: repos.RecUser, Err: err}
	}
	s.current = nil
	return nil
}

func (s *SessionService) Current() *domain.Session {
	return s.current
}

// RequireLogin is the precondition for cart, review and checkout mutations.
func (s *SessionService) RequireLogin() (*domain.Session, error) {
	if s.current == nil {
		return nil, domain.ErrAuthRequired
	}
	return s.current, nil
}

// RequireAdmin is the precondition for catalog admin mutations.
func (s *SessionService) RequireAdmin() (*domain.Session, error) {
	if !s.current.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	return s.current, nil
}
