package admin

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"pet-adoption/internal/ports/auth"
)

var (
	ErrInvalidPassword = errors.New("incorrect password")
	ErrDisabled        = errors.New("admin login is not configured")
)

// Subject fijo: hay un solo admin compartido.
const Subject = "admin"

type Service struct {
	password string
	sessions auth.SessionIssuer
}

// NewService con password vacío deja el login deshabilitado.
func NewService(password string, sessions auth.SessionIssuer) *Service {
	return &Service{password: password, sessions: sessions}
}

func (s *Service) Enabled() bool {
	return s.password != "" && s.sessions != nil
}

// Login compara el password (tiempo constante) y emite una sesión de admin.
func (s *Service) Login(ctx context.Context, password string) (auth.Session, error) {
	if !s.Enabled() {
		return auth.Session{}, ErrDisabled
	}
	if !passwordsEqual(password, s.password) {
		return auth.Session{}, ErrInvalidPassword
	}
	return s.sessions.Issue(ctx, Subject, auth.RoleAdmin)
}

// Se comparan hashes para que la longitud del password no se filtre por timing.
func passwordsEqual(got, want string) bool {
	g := sha256.Sum256([]byte(got))
	w := sha256.Sum256([]byte(want))
	return subtle.ConstantTimeCompare(g[:], w[:]) == 1
}
