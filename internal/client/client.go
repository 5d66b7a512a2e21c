package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// sessionIDHeader carries the CSRF token the daemon hands out on a 409.
const sessionIDHeader = "X-Transmission-Session-Id"

// Config connects a Client to a daemon endpoint.
type Config struct {
	// URL is the full endpoint URL (e.g. "http://localhost:9091/transmission/rpc").
	URL string

	// User and Password authenticate via HTTP basic auth when non-empty.
	User     string
	Password string

	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration

	// HTTPClient overrides the transport. Nil uses a default client.
	HTTPClient *http.Client
}

// Client talks to one daemon and caches its session snapshot.
type Client struct {
	cfg  Config
	http *http.Client

	mu        sync.RWMutex
	sessionID string
	session   string // raw session-get arguments JSON; "" until fetched
}

// New creates a client. No connection is made until the first request.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: hc}
}

// URL returns the configured endpoint URL.
func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.URL
}

// Reconfigure replaces the connection parameters. The session snapshot
// is dropped because it belongs to the previous endpoint.
func (c *Client) Reconfigure(cfg Config) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.http = hc
	c.sessionID = ""
	c.session = ""
}

// call POSTs a request document and returns the response arguments.
// body is the full request JSON including the method field.
func (c *Client) call(ctx context.Context, method, body string) (gjson.Result, error) {
	res, retry, err := c.post(ctx, method, body)
	if retry {
		res, _, err = c.post(ctx, method, body)
	}
	return res, err
}

// post performs one request. retry is true when the daemon demanded a
// fresh session ID, which post has already recorded.
func (c *Client) post(ctx context.Context, method, body string) (gjson.Result, bool, error) {
	c.mu.RLock()
	cfg, hc, sessionID := c.cfg, c.http, c.sessionID
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, bytes.NewReader([]byte(body)))
	if err != nil {
		return gjson.Result{}, false, &Error{Method: method, Err: ErrConnect, Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.User != "" {
		req.SetBasicAuth(cfg.User, cfg.Password)
	}
	if sessionID != "" {
		req.Header.Set(sessionIDHeader, sessionID)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return gjson.Result{}, false, &Error{Method: method, Err: ErrConnect, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		c.mu.Lock()
		c.sessionID = resp.Header.Get(sessionIDHeader)
		c.mu.Unlock()
		return gjson.Result{}, true, &Error{Method: method, Err: ErrConnect, Reason: "session ID expired"}
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, false, &Error{Method: method, Err: ErrConnect, Reason: resp.Status}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, false, &Error{Method: method, Err: ErrConnect, Reason: err.Error()}
	}
	doc := gjson.ParseBytes(raw)
	if result := doc.Get("result").String(); result != "success" {
		return gjson.Result{}, false, &Error{Method: method, Err: ErrDaemon, Reason: result}
	}
	return doc.Get("arguments"), false, nil
}

// request builds a request document from a method and argument pairs.
func request(method string, args map[string]any) (string, error) {
	body, err := sjson.Set("", "method", method)
	if err != nil {
		return "", err
	}
	for key, val := range args {
		if body, err = sjson.Set(body, "arguments."+key, val); err != nil {
			return "", err
		}
	}
	return body, nil
}

// RefreshSession renews the session snapshot with one round trip.
func (c *Client) RefreshSession(ctx context.Context) error {
	body, err := request("session-get", nil)
	if err != nil {
		return err
	}
	args, err := c.call(ctx, "session-get", body)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.session = args.Raw
	c.mu.Unlock()
	return nil
}

// SetSession pushes one session field to the daemon and folds the new
// value into the local snapshot.
func (c *Client) SetSession(ctx context.Context, key string, val any) error {
	body, err := request("session-set", map[string]any{key: val})
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, "session-set", body); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != "" {
		if updated, err := sjson.Set(c.session, escapeKey(key), val); err == nil {
			c.session = updated
		}
	}
	return nil
}

// escapeKey protects dots in daemon field names from sjson path syntax.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}

// sessionField reads one field from the snapshot.
func (c *Client) sessionField(key string) (gjson.Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == "" {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrNoSession, key)
	}
	res := gjson.Get(c.session, escapeKey(key))
	if !res.Exists() {
		return gjson.Result{}, fmt.Errorf("%w: unknown session field %s", ErrNoSession, key)
	}
	return res, nil
}

// SessionBool reads a boolean session field from the snapshot.
func (c *Client) SessionBool(key string) (bool, error) {
	res, err := c.sessionField(key)
	if err != nil {
		return false, err
	}
	return res.Bool(), nil
}

// SessionInt reads an integer session field from the snapshot.
func (c *Client) SessionInt(key string) (int64, error) {
	res, err := c.sessionField(key)
	if err != nil {
		return 0, err
	}
	return res.Int(), nil
}

// SessionFloat reads a numeric session field from the snapshot.
func (c *Client) SessionFloat(key string) (float64, error) {
	res, err := c.sessionField(key)
	if err != nil {
		return 0, err
	}
	return res.Float(), nil
}

// SessionString reads a string session field from the snapshot.
func (c *Client) SessionString(key string) (string, error) {
	res, err := c.sessionField(key)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}
