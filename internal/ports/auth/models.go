package auth

import "time"

const RoleAdmin = "admin"

// Claims representa la información extraída del token de sesión.
type Claims struct {
	Subject   string
	Role      string
	SessionID string
	ExpiresAt time.Time
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Session es un token emitido tras un login exitoso.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
