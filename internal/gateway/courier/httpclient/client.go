package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/entities"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

const (
	CodeTimeout     = "timeout"
	CodeNetwork     = "network"
	CodeBadResponse = "bad_response"
	CodeRejected    = "rejected"
)

// SignFunc добавляет к запросу авторизацию провайдера. body - уже сериализованное тело.
type SignFunc func(ctx context.Context, req *http.Request, body []byte) error

// Client - общий JSON транспорт для курьерских адаптеров. Все ошибки
// возвращаются как *entities.ProviderError с флагом Retryable.
type Client struct {
	provider entities.ProviderID
	baseURL  string
	http     *http.Client
	sign     SignFunc
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func WithSigner(sign SignFunc) Option {
	return func(cl *Client) {
		cl.sign = sign
	}
}

func New(provider entities.ProviderID, baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		provider: provider,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Provider() entities.ProviderID {
	return c.provider
}

// Do отправляет JSON запрос и декодирует ответ в out (если out != nil).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return c.newError(CodeRejected, fmt.Sprintf("encode request: %v", err), false, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return c.newError(CodeRejected, fmt.Sprintf("build request: %v", err), false, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.sign != nil {
		if err := c.sign(ctx, req, body); err != nil {
			return err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classifyStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.newError(CodeBadResponse, fmt.Sprintf("decode response: %v", err), false, err)
	}
	return nil
}

// Reject - отказ провайдера на уровне бизнес-логики (HTTP 200, но ok=false).
func (c *Client) Reject(message string) error {
	return c.newError(CodeRejected, message, false, nil)
}

func (c *Client) classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return c.newError(CodeTimeout, "request timed out", true, err)
	}
	if errors.Is(err, context.Canceled) {
		return c.newError(CodeNetwork, "request cancelled", false, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return c.newError(CodeTimeout, "request timed out", true, err)
	}

	return c.newError(CodeNetwork, err.Error(), true, err)
}

func (c *Client) classifyStatus(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := extractMessage(raw)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError

	return c.newError(fmt.Sprintf("http_%d", resp.StatusCode), message, retryable, nil)
}

func (c *Client) newError(code, message string, retryable bool, err error) *entities.ProviderError {
	return &entities.ProviderError{
		Provider:  c.provider,
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}

// провайдеры кладут текст ошибки в разные поля
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}

	for _, m := range []string{body.Message, body.Error, body.Detail} {
		if m != "" {
			return m
		}
	}
	return ""
}
