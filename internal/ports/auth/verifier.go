package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionIssuer emite tokens de sesión para un sujeto con un rol.
type SessionIssuer interface {
	Issue(ctx context.Context, subject, role string) (Session, error)
}
