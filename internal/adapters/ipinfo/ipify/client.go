package ipify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("ip lookup not configured")
	ErrUpstream      = errors.New("ip lookup upstream error")
)

const DefaultURL = "https://api64.ipify.org?format=json"

type Config struct {
	URL     string
	Timeout time.Duration

	// Override fija la respuesta sin llamar afuera (dev / sin red).
	Override string

	UserAgent string
	Transport http.RoundTripper // nil = http.DefaultTransport
}

// Client consulta un servicio estilo ipify: GET <url> => {"ip": "..."}.
// Implementa ipinfo.PublicIPResolver.
type Client struct {
	url      string
	override string
	http     *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	u := strings.TrimSpace(cfg.URL)
	if u == "" {
		u = DefaultURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.New(timeout,
		httpclient.WithUserAgent(cfg.UserAgent),
		httpclient.WithTransport(cfg.Transport),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		url:      u,
		override: strings.TrimSpace(cfg.Override),
		http:     hc,
	}, nil
}

type lookupResponse struct {
	IP string `json:"ip"`
}

func (c *Client) PublicIP(ctx context.Context) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	if c.override != "" {
		return c.override, nil
	}

	var out lookupResponse
	if err := c.http.GetJSON(ctx, c.url, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	ip := strings.TrimSpace(out.IP)
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("%w: invalid ip %q", ErrUpstream, out.IP)
	}
	return ip, nil
}
