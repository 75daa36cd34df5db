package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/ports/notify"
)

var (
	ErrNotConfigured = errors.New("telegram client not configured")
	ErrUpstream      = errors.New("telegram upstream error")
)

const DefaultBaseURL = "https://api.telegram.org"

// Config del bot. Token y ChatID vienen de TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID.
type Config struct {
	BaseURL  string
	BotToken string
	ChatID   string
	Timeout  time.Duration

	UserAgent string
	Transport http.RoundTripper
}

// Client implementa notify.Notifier con la Bot API (sendMessage).
type Client struct {
	token  string
	chatID string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc, err := httpclient.New(timeout,
		httpclient.WithBaseURL(base),
		httpclient.WithUserAgent(cfg.UserAgent),
		httpclient.WithTransport(cfg.Transport),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		token:  strings.TrimSpace(cfg.BotToken),
		chatID: strings.TrimSpace(cfg.ChatID),
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.token != "" && c.chatID != ""
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(msg.Text) == "" {
		return errors.New("telegram: empty message")
	}

	var out sendMessageResponse
	err := c.http.PostJSON(ctx, "/bot"+c.token+"/sendMessage", sendMessageRequest{
		ChatID: c.chatID,
		Text:   msg.Text,
	}, &out)
	if err != nil {
		// no exponemos el token (va en el path) en el error
		return fmt.Errorf("%w: status=%d", ErrUpstream, httpclient.StatusCode(err))
	}
	if !out.OK {
		return fmt.Errorf("%w: %s", ErrUpstream, out.Description)
	}
	return nil
}
