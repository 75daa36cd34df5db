package ipinfo

import "context"

// PublicIPResolver resuelve la IP pública vista desde afuera.
type PublicIPResolver interface {
	PublicIP(ctx context.Context) (string, error)
}
