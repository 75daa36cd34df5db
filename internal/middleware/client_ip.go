package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP devuelve la IP del visitante: la del socket, o la del proxy
// si chimw.RealIP está montado (solo con TRUST_PROXY).
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	// RealIP deja la IP sin puerto; IPv6 puede venir entre corchetes.
	return strings.Trim(addr, "[]")
}
