package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Session is the currently authenticated identity. A nil *Session means
// logged out; at most one session is active at a time.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }
