package ipify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PublicIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{"ip":"203.0.113.7"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{URL: srv.URL + "?format=json"})
	require.NoError(t, err)

	ip, err := c.PublicIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
}

func TestClient_PublicIP_UpstreamErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status 503": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		"bad json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":`))
		},
		"not an ip": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ip":"localhost"}`))
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			c, err := NewClient(Config{URL: srv.URL})
			require.NoError(t, err)

			_, err = c.PublicIP(context.Background())
			require.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestClient_PublicIP_Override(t *testing.T) {
	c, err := NewClient(Config{URL: "http://192.0.2.1/unused", Override: "198.51.100.1"})
	require.NoError(t, err)

	ip, err := c.PublicIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.1", ip)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_PublicIP_CustomTransportAndUserAgent(t *testing.T) {
	var gotUA, gotURL string
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotUA, gotURL = r.Header.Get("User-Agent"), r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"ip":"2001:db8::1"}`)),
			Request:    r,
		}, nil
	})

	c, err := NewClient(Config{URL: "https://ip.example/?format=json", UserAgent: "pet-adoption-test", Transport: tr})
	require.NoError(t, err)

	ip, err := c.PublicIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", ip)
	assert.Equal(t, "pet-adoption-test", gotUA)
	assert.Equal(t, "https://ip.example/?format=json", gotURL)
}
