// Package rentalapi is the typed client of the rental REST API. It is the only
// place that knows endpoint paths, the Mongo-style wire shapes, and the mix of
// enveloped ({"data": ...}) and bare payloads the API returns.
package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"rental_console/internal/domain/errs"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const maxMessageLen = 300

// Client issues requests against one API base URL. It performs no retries
// and keeps no cache.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

func New(baseURL string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

func NewWithHTTPClient(baseURL string, hc *http.Client, logger logrus.FieldLogger) *Client {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc, log: logger}
}

func (c *Client) TeamMembers() *TeamMemberAPI   { return &TeamMemberAPI{c: c} }
func (c *Client) Clients() *ClientAPI           { return &ClientAPI{c: c} }
func (c *Client) Products() *ProductAPI         { return &ProductAPI{c: c} }
func (c *Client) Quotations() *QuotationAPI     { return &QuotationAPI{c: c} }
func (c *Client) Orders() *OrderAPI             { return &OrderAPI{c: c} }
func (c *Client) Payments() *PaymentAPI         { return &PaymentAPI{c: c} }
func (c *Client) Terms() *TermsAPI              { return &TermsAPI{c: c} }
func (c *Client) InvoiceNames() *InvoiceNameAPI { return &InvoiceNameAPI{c: c} }

// do sends body as JSON and decodes the response into out (when non-nil),
// unwrapping the first of "data" or keys found in an object envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any, keys ...string) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &errs.RemoteError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"op": op, "err": err}).Warn("[rentalapi] request failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &errs.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.RemoteError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	c.log.WithFields(logrus.Fields{
		"op":          op,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("[rentalapi] response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errs.RemoteError{Op: op, StatusCode: resp.StatusCode, Message: extractMessage(raw)}
	}
	if out == nil {
		return nil
	}
	if err := decodeBody(raw, out, keys...); err != nil {
		return &errs.RemoteError{Op: op, StatusCode: resp.StatusCode, Message: "unexpected response payload", Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, keys ...string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, keys...)
}

func (c *Client) post(ctx context.Context, path string, body, out any, keys ...string) error {
	return c.do(ctx, http.MethodPost, path, body, out, keys...)
}

func (c *Client) put(ctx context.Context, path string, body, out any, keys ...string) error {
	return c.do(ctx, http.MethodPut, path, body, out, keys...)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// decodeBody accepts a bare payload or an object envelope carrying it as an
// object or array under "data" (or one of keys). Scalar values under those
// keys belong to a bare payload and are left alone.
func decodeBody(raw []byte, out any, keys ...string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errors.New("empty body")
	}
	if raw[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(raw, &env); err == nil {
			for _, k := range append([]string{"data"}, keys...) {
				if v, ok := env[k]; ok && (isObject(v) || isArray(v)) {
					raw = v
					break
				}
			}
		}
	}
	return json.Unmarshal(raw, out)
}

// extractMessage returns the API's "message" (or "error") field, falling
// back to the raw body text.
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if m := strings.TrimSpace(body.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(body.Error); m != "" {
			return m
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	return msg
}

func isObject(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '{'
}

func isArray(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '['
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || string(bytes.TrimSpace(v)) == "null"
}

func idPath(prefix string, ids ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, id := range ids {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(id))
	}
	return b.String()
}
