package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("session manager not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrTokenExpired  = errors.New("token is expired")
)

const defaultIssuer = "pet-adoption"

// Config del manager de sesiones.
// Secret normalmente viene de SESSION_SECRET (o uno aleatorio por proceso).
type Config struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	Now    func() time.Time
}

// Manager emite y valida tokens HS256.
// Implementa auth.SessionIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrNotConfigured
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = defaultIssuer
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{secret: cfg.Secret, ttl: ttl, issuer: issuer, now: now}, nil
}

func (m *Manager) Issue(_ context.Context, subject, role string) (auth.Session, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return auth.Session{}, errors.New("subject required")
	}

	now := m.now().UTC()
	exp := now.Add(m.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return auth.Session{}, fmt.Errorf("sign session: %w", err)
	}
	// NumericDate trunca a segundos; devolvemos lo mismo que va en el token.
	return auth.Session{Token: signed, ExpiresAt: claims.ExpiresAt.Time.UTC()}, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, ErrTokenExpired
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if strings.TrimSpace(parsed.Subject) == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return auth.Claims{
		Subject:   parsed.Subject,
		Role:      parsed.Role,
		SessionID: parsed.ID,
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
	}, nil
}
